package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateAndReadSnapshot(t *testing.T) {
	m := NewManager(t.TempDir())
	doc := json.RawMessage(`{"record": [{"Category": "Gaming", "Activity": "Hades"}]}`)

	path, err := m.CreateSnapshot(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.ReadSnapshot(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("snapshot content changed: %s", got)
	}
}

func TestCreateSnapshotCollision(t *testing.T) {
	m := NewManager(t.TempDir())
	doc := json.RawMessage(`{"record": []}`)

	// Same-second snapshots must get distinct names
	first, err := m.CreateSnapshot(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.CreateSnapshot(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct snapshot paths, got %s twice", first)
	}
}

func TestListSnapshots(t *testing.T) {
	configDir := t.TempDir()
	m := NewManager(configDir)

	snapshots, err := m.ListSnapshots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("expected no snapshots before the directory exists, got %d", len(snapshots))
	}

	if err := os.MkdirAll(m.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	names := []string{
		"duolist-20260101-090000.json",
		"duolist-20260301-090000.json",
		"duolist-20260201-090000.json",
		"unrelated.txt",
		"duolist-garbage.json",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.Dir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	snapshots, err = m.ListSnapshots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
	}
	// Newest first
	if filepath.Base(snapshots[0].Path) != "duolist-20260301-090000.json" {
		t.Errorf("expected newest first, got %s", snapshots[0].Path)
	}
	if filepath.Base(snapshots[2].Path) != "duolist-20260101-090000.json" {
		t.Errorf("expected oldest last, got %s", snapshots[2].Path)
	}
}

func TestRotation(t *testing.T) {
	m := NewManager(t.TempDir())
	if err := os.MkdirAll(m.Dir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Pre-seed more than the retention limit of older snapshots
	for i := 0; i < MaxSnapshots+5; i++ {
		name := fmt.Sprintf("duolist-202601%02d-090000.json", i+1)
		if err := os.WriteFile(filepath.Join(m.Dir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := m.CreateSnapshot(json.RawMessage(`{"record": []}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshots, err := m.ListSnapshots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != MaxSnapshots {
		t.Errorf("expected rotation down to %d snapshots, got %d", MaxSnapshots, len(snapshots))
	}
	// Rotation drops the oldest snapshots first
	oldest := filepath.Base(snapshots[len(snapshots)-1].Path)
	if oldest == "duolist-20260101-090000.json" {
		t.Errorf("expected the oldest snapshots to be rotated out, %s survived", oldest)
	}
}
