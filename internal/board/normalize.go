package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/abdullahosa/duo-list/internal/models"
)

// Columns is the canonical column set of the shared document, in persistence
// and display order.
var Columns = []string{"Category", "Activity", "Type", "Vibe", "Status", "Link"}

// Table is the normalized in-memory view of the shared document. Records is
// never nil, so consumers can range over it without existence checks.
type Table struct {
	Records []models.Record
}

// Empty returns a zero-row table with the canonical shape.
func Empty() Table {
	return Table{Records: []models.Record{}}
}

// Normalize turns an untrusted raw document into the canonical record table.
// The backing store allows arbitrary manual edits through its own UI, so the
// document shape is tolerated rather than trusted: a missing or unrecognized
// record collection degrades to zero rows, and a parse failure is reported as
// a recoverable error alongside an empty, correctly-shaped table.
func Normalize(doc json.RawMessage) (Table, error) {
	rows, err := extractRows(doc)
	if err != nil {
		return Empty(), fmt.Errorf("malformed document: %w", err)
	}

	t := Table{Records: make([]models.Record, 0, len(rows))}
	for _, row := range rows {
		rec := recordFromRow(row)
		if rec.Category == "" {
			// Rows without a category are noise from manual edits.
			continue
		}
		rec.ID = uuid.New().String()
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// extractRows pulls the value at the top-level "record" key and decodes it
// into row objects. An absent key is an empty collection, not an error.
func extractRows(doc json.RawMessage) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var top struct {
		Record json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return decodeRows(top.Record, true)
}

// decodeRows classifies the extracted value as an array, a single record
// object, or unrecognized content. Double-wrapped documents (a "record" key
// pasted inside the bin by hand) are unwrapped exactly one level.
func decodeRows(raw json.RawMessage, allowUnwrap bool) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var rows []map[string]any
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("record collection is not an array of objects: %w", err)
		}
		return rows, nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("record collection is not valid JSON: %w", err)
		}
		if inner, ok := obj["record"]; ok && allowUnwrap {
			return decodeRows(inner, false)
		}
		if _, ok := obj["Category"]; ok {
			// A bare record object pasted without the wrapping array.
			var row map[string]any
			if err := json.Unmarshal(trimmed, &row); err != nil {
				return nil, fmt.Errorf("record object is not valid JSON: %w", err)
			}
			return []map[string]any{row}, nil
		}
		// An object that is neither a wrapper nor a record: discard.
		return nil, nil

	default:
		// Scalar content where the collection should be: discard.
		return nil, nil
	}
}

// recordFromRow maps a loose row object onto the canonical columns. Legacy
// column names are migrated before the blank default applies, so old
// documents keep their data under the new names.
func recordFromRow(row map[string]any) models.Record {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := row[k]; ok {
				if s := cellString(v); s != "" {
					return s
				}
			}
		}
		return ""
	}

	return models.Record{
		Category: get("Category"),
		Activity: get("Activity"),
		Type:     get("Type", "Filter_1"),
		Vibe:     get("Vibe", "Filter_2"),
		Status:   models.Status(get("Status")),
		Link:     get("Link"),
	}
}

func cellString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
