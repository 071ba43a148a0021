package board

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/abdullahosa/duo-list/internal/models"
)

// ErrEmptySelection is returned by PickRandom when the filtered subset has no
// rows. Callers should check emptiness first; this is a precondition failure,
// not a tolerated case.
var ErrEmptySelection = errors.New("no activities match the current selection")

// Filter returns the rows matching category and status exactly, restricted to
// the given Type/Vibe value sets when they are non-empty. An empty value set
// leaves that dimension unfiltered. Row order is preserved.
func Filter(t Table, category string, status models.Status, types, vibes []string) []models.Record {
	var out []models.Record
	for _, rec := range t.Records {
		if rec.Category != category || rec.Status != status {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, rec.Type) {
			continue
		}
		if len(vibes) > 0 && !slices.Contains(vibes, rec.Vibe) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// PickRandom selects one row uniformly at random from an already-filtered
// subset.
func PickRandom(rows []models.Record) (models.Record, error) {
	if len(rows) == 0 {
		return models.Record{}, ErrEmptySelection
	}
	return rows[rand.IntN(len(rows))], nil
}
