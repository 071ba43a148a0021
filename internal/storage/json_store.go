package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdullahosa/duo-list/internal/models"
)

// document is the shape local stores share with the remote bin, so the
// normalizer is the single parse path for every backend.
type document struct {
	Record []models.Record `json:"record"`
}

// JSONStore keeps the shared document in a single local file. Used for
// offline boards, backups, and tests.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(document{Record: []models.Record{}})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Fetch(_ context.Context) (json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage not initialized, run 'duolist init' first")
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	return json.RawMessage(data), nil
}

func (s *JSONStore) Persist(_ context.Context, recs []models.Record) error {
	if recs == nil {
		recs = []models.Record{}
	}
	return s.write(document{Record: recs})
}

func (s *JSONStore) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Source() string {
	return s.path
}
