package board

import (
	"encoding/json"
	"testing"
)

func TestNormalizeFlatDocument(t *testing.T) {
	doc := json.RawMessage(`{"record": [
		{"Category": "Gaming", "Activity": "Baldur's Gate 3", "Type": "RPG", "Vibe": "Co-op", "Status": "To Do", "Link": ""},
		{"Category": "Movies", "Activity": "Dune", "Type": "Sci-Fi", "Vibe": "Cozy", "Status": "Completed", "Link": "https://example.com"}
	]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records))
	}

	rec := table.Records[0]
	if rec.Category != "Gaming" || rec.Activity != "Baldur's Gate 3" {
		t.Errorf("first record mangled: %+v", rec)
	}
	if rec.Type != "RPG" || rec.Vibe != "Co-op" {
		t.Errorf("attribute columns mangled: %+v", rec)
	}
	if rec.ID == "" {
		t.Error("expected a row id to be assigned")
	}
	if table.Records[1].Link != "https://example.com" {
		t.Errorf("link column mangled: %+v", table.Records[1])
	}
}

func TestNormalizeDoubleWrappedDocument(t *testing.T) {
	flat := json.RawMessage(`{"record": [{"Category": "Gaming", "Activity": "Hades", "Type": "Roguelike", "Vibe": "Solo", "Status": "To Do"}]}`)
	wrapped := json.RawMessage(`{"record": {"record": [{"Category": "Gaming", "Activity": "Hades", "Type": "Roguelike", "Vibe": "Solo", "Status": "To Do"}]}}`)

	flatTable, err := Normalize(flat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrappedTable, err := Normalize(wrapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(flatTable.Records) != 1 || len(wrappedTable.Records) != 1 {
		t.Fatalf("expected 1 record each, got %d and %d", len(flatTable.Records), len(wrappedTable.Records))
	}
	if !flatTable.Records[0].Equal(wrappedTable.Records[0]) {
		t.Errorf("wrapped and flat documents diverged: %+v vs %+v",
			flatTable.Records[0], wrappedTable.Records[0])
	}
}

func TestNormalizeLegacyColumnNames(t *testing.T) {
	doc := json.RawMessage(`{"record": [
		{"Category": "Gaming", "Activity": "Old Row", "Filter_1": "RPG", "Filter_2": "Co-op", "Status": "To Do"}
	]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table.Records))
	}
	if table.Records[0].Type != "RPG" {
		t.Errorf("expected Filter_1 to migrate to Type, got %q", table.Records[0].Type)
	}
	if table.Records[0].Vibe != "Co-op" {
		t.Errorf("expected Filter_2 to migrate to Vibe, got %q", table.Records[0].Vibe)
	}
}

func TestNormalizeNewNamesWinOverLegacy(t *testing.T) {
	doc := json.RawMessage(`{"record": [
		{"Category": "Gaming", "Activity": "Both", "Type": "RPG", "Filter_1": "Stale", "Status": "To Do"}
	]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Records[0].Type != "RPG" {
		t.Errorf("expected the new column name to win, got %q", table.Records[0].Type)
	}
}

func TestNormalizeMissingColumnsBecomeBlank(t *testing.T) {
	doc := json.RawMessage(`{"record": [{"Category": "Movies", "Activity": "Short Row"}]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := table.Records[0]
	if rec.Type != "" || rec.Vibe != "" || string(rec.Status) != "" || rec.Link != "" {
		t.Errorf("expected blank defaults for missing columns, got %+v", rec)
	}
}

func TestNormalizeDropsCategorylessRows(t *testing.T) {
	doc := json.RawMessage(`{"record": [
		{"Category": "Gaming", "Activity": "Keep"},
		{"Activity": "Orphan"},
		{"Category": "", "Activity": "Blank"},
		{"Category": null, "Activity": "Null"}
	]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table.Records))
	}
	if table.Records[0].Activity != "Keep" {
		t.Errorf("wrong survivor: %+v", table.Records[0])
	}
}

func TestNormalizeDegradedShapes(t *testing.T) {
	zeroRow := []struct {
		name string
		doc  string
	}{
		{"empty object", `{}`},
		{"missing record key", `{"metadata": {"id": "abc"}}`},
		{"null record", `{"record": null}`},
		{"empty array", `{"record": []}`},
		{"scalar record", `{"record": 42}`},
		{"string record", `{"record": "oops"}`},
		{"unrecognized object", `{"record": {"foo": "bar"}}`},
	}

	for _, tc := range zeroRow {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Normalize(json.RawMessage(tc.doc))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(table.Records) != 0 {
				t.Errorf("expected zero rows, got %d", len(table.Records))
			}
			if table.Records == nil {
				t.Error("Records must be non-nil after normalization")
			}
		})
	}
}

func TestNormalizeBareRecordObject(t *testing.T) {
	doc := json.RawMessage(`{"record": {"Category": "Date Night", "Activity": "Picnic", "Status": "To Do"}}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Records) != 1 {
		t.Fatalf("expected the bare object to become one row, got %d", len(table.Records))
	}
	if table.Records[0].Activity != "Picnic" {
		t.Errorf("row mangled: %+v", table.Records[0])
	}
}

func TestNormalizeMalformedDocument(t *testing.T) {
	table, err := Normalize(json.RawMessage(`not json at all`))
	if err == nil {
		t.Error("expected an error for unparseable content")
	}
	if table.Records == nil || len(table.Records) != 0 {
		t.Errorf("expected an empty but shaped table, got %+v", table)
	}
}

func TestNormalizeCoercesScalarCells(t *testing.T) {
	doc := json.RawMessage(`{"record": [{"Category": "Projects", "Activity": "Numbers", "Type": 3, "Vibe": true}]}`)

	table, err := Normalize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := table.Records[0]
	if rec.Type != "3" {
		t.Errorf("expected numeric cell to coerce to %q, got %q", "3", rec.Type)
	}
	if rec.Vibe != "true" {
		t.Errorf("expected boolean cell to coerce to %q, got %q", "true", rec.Vibe)
	}
}
