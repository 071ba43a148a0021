package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdullahosa/duo-list/internal/models"
)

// decodeDocument parses the {"record": [...]} shape local stores emit.
func decodeDocument(t *testing.T, raw json.RawMessage) []models.Record {
	t.Helper()
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("store emitted an unparseable document: %v", err)
	}
	return doc.Record
}

func TestJSONStoreInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "board.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recs := decodeDocument(t, raw)
	if len(recs) != 0 {
		t.Errorf("a fresh store must be empty, got %d records", len(recs))
	}

	if err := store.Init(); err == nil {
		t.Error("expected an error when initializing twice")
	}
}

func TestJSONStoreFetchUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing store")
	}
	if !strings.Contains(err.Error(), "duolist init") {
		t.Errorf("error must point at init, got: %v", err)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "board.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := []models.Record{
		{ID: "local", Category: "Gaming", Activity: "Hades", Type: "Roguelike", Vibe: "Solo", Status: models.StatusToDo},
		{Category: "Movies", Activity: "Dune", Type: "Sci-Fi", Vibe: "Cozy", Status: models.StatusCompleted, Link: "https://example.com"},
	}
	if err := store.Persist(context.Background(), recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := decodeDocument(t, raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Activity != "Hades" || got[1].Link != "https://example.com" {
		t.Errorf("round trip mangled records: %+v", got)
	}
	if got[0].ID != "" {
		t.Error("row ids are session-local and must not survive a round trip")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "board.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	recs := []models.Record{
		{Category: "Gaming", Activity: "Hades", Type: "Roguelike", Vibe: "Solo", Status: models.StatusToDo},
		{Category: "Gaming", Activity: "Elden Ring", Type: "RPG", Vibe: "Solo", Status: models.StatusInProgress},
		{Category: "Projects", Activity: "Garden", Status: models.StatusToDo},
	}
	if err := store.Persist(context.Background(), recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := decodeDocument(t, raw)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	// Row order must survive the round trip
	if got[0].Activity != "Hades" || got[2].Activity != "Garden" {
		t.Errorf("row order changed: %+v", got)
	}
	if got[1].Status != models.StatusInProgress {
		t.Errorf("status column mangled: %+v", got[1])
	}

	// Persist is full-replace
	if err := store.Persist(context.Background(), recs[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err = store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = decodeDocument(t, raw)
	if len(got) != 1 {
		t.Errorf("expected full replacement to leave 1 record, got %d", len(got))
	}
}

func TestSQLiteStoreUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	_, err := store.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing store")
	}
	if !strings.Contains(err.Error(), "duolist init") {
		t.Errorf("error must point at init, got: %v", err)
	}
}
