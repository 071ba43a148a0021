package board

import (
	"testing"

	"github.com/abdullahosa/duo-list/internal/models"
)

func makeTable() Table {
	return Table{Records: []models.Record{
		{ID: "a", Category: "Gaming", Activity: "Hades", Type: "Roguelike", Vibe: "Solo", Status: models.StatusToDo},
		{ID: "b", Category: "Gaming", Activity: "It Takes Two", Type: "Platformer", Vibe: "Co-op", Status: models.StatusToDo},
		{ID: "c", Category: "Movies", Activity: "Dune", Type: "Sci-Fi", Vibe: "Cozy", Status: models.StatusToDo},
		{ID: "d", Category: "Gaming", Activity: "Hades", Type: "Roguelike", Vibe: "Solo", Status: models.StatusCompleted},
	}}
}

func TestReconcileSingleStatusEdit(t *testing.T) {
	full := makeTable()
	original := Filter(full, "Gaming", models.StatusToDo, nil, nil)
	if len(original) != 2 {
		t.Fatalf("expected 2 filtered rows, got %d", len(original))
	}

	edited := make([]models.Record, len(original))
	copy(edited, original)
	edited[1].Status = models.StatusInProgress

	if !Reconcile(&full, original, edited) {
		t.Fatal("expected Reconcile to report a change")
	}

	if full.Records[1].Status != models.StatusInProgress {
		t.Errorf("expected row b to change, got %+v", full.Records[1])
	}
	if full.Records[0].Status != models.StatusToDo {
		t.Errorf("row a must be untouched, got %+v", full.Records[0])
	}
	if full.Records[2].Status != models.StatusToDo || full.Records[3].Status != models.StatusCompleted {
		t.Error("rows outside the filtered view must be untouched")
	}
}

func TestReconcileNoEditsLeavesTableAlone(t *testing.T) {
	full := makeTable()
	want := makeTable()
	original := Filter(full, "Gaming", models.StatusToDo, nil, nil)
	edited := make([]models.Record, len(original))
	copy(edited, original)

	if Reconcile(&full, original, edited) {
		t.Error("expected Reconcile to report no change")
	}
	for i := range full.Records {
		if !full.Records[i].Equal(want.Records[i]) {
			t.Errorf("row %d changed without edits: %+v", i, full.Records[i])
		}
	}
}

func TestReconcileDuplicateLookingRows(t *testing.T) {
	// Rows a and d differ only in status. Editing a must not touch d even
	// though their other cells are identical.
	full := makeTable()
	original := Filter(full, "Gaming", models.StatusToDo, nil, nil)

	edited := make([]models.Record, len(original))
	copy(edited, original)
	edited[0].Status = models.StatusInProgress

	if !Reconcile(&full, original, edited) {
		t.Fatal("expected Reconcile to report a change")
	}
	if full.Records[0].Status != models.StatusInProgress {
		t.Errorf("expected row a updated, got %+v", full.Records[0])
	}
	if full.Records[3].Status != models.StatusCompleted {
		t.Errorf("duplicate-looking row d must be untouched, got %+v", full.Records[3])
	}
}

func TestReconcileNonStatusEdit(t *testing.T) {
	full := makeTable()
	original := []models.Record{full.Records[2]}
	edited := []models.Record{full.Records[2]}
	edited[0].Link = "https://letterboxd.example/dune"
	edited[0].Vibe = "Epic"

	if !Reconcile(&full, original, edited) {
		t.Fatal("expected Reconcile to report a change")
	}
	if full.Records[2].Link != "https://letterboxd.example/dune" || full.Records[2].Vibe != "Epic" {
		t.Errorf("non-status cells must merge too, got %+v", full.Records[2])
	}
}

func TestReconcileVanishedRow(t *testing.T) {
	full := makeTable()
	ghost := models.Record{ID: "zzz", Category: "Gaming", Activity: "Gone", Status: models.StatusToDo}
	edited := ghost
	edited.Status = models.StatusCompleted

	if Reconcile(&full, []models.Record{ghost}, []models.Record{edited}) {
		t.Error("an edit to a row missing from the full table must be a no-op")
	}
	if len(full.Records) != 4 {
		t.Errorf("table length changed: %d", len(full.Records))
	}
}
