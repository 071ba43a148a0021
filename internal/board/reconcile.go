package board

import "github.com/abdullahosa/duo-list/internal/models"

// Reconcile merges rows edited in a filtered view back into the full table.
// original is the filtered subset as handed to the edit surface; edited is
// the same subset after editing. Rows are matched by the stable id assigned
// at normalization time, so rows outside the filtered view are untouched
// even when duplicate-looking rows exist.
//
// Returns true when any cell differs; callers must skip the write-back when
// it returns false to avoid needless full-document overwrites.
func Reconcile(full *Table, original, edited []models.Record) bool {
	byID := make(map[string]int, len(full.Records))
	for i, rec := range full.Records {
		byID[rec.ID] = i
	}

	before := make(map[string]models.Record, len(original))
	for _, rec := range original {
		before[rec.ID] = rec
	}

	changed := false
	for _, rec := range edited {
		orig, ok := before[rec.ID]
		if !ok || orig.Equal(rec) {
			continue
		}
		idx, ok := byID[rec.ID]
		if !ok {
			// The row disappeared from the full table between filter and
			// edit; nothing to route the change to.
			continue
		}
		full.Records[idx] = rec
		changed = true
	}
	return changed
}
