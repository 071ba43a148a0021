package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/abdullahosa/duo-list/internal/models"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL,
	activity TEXT NOT NULL DEFAULT '',
	type     TEXT NOT NULL DEFAULT '',
	vibe     TEXT NOT NULL DEFAULT '',
	status   TEXT NOT NULL DEFAULT '',
	link     TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore keeps a local mirror of the shared document in a single table.
// Fetch assembles the same {"record": [...]} document shape as the remote
// bin; Persist replaces every row inside one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(recordsSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'duolist init' first")
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT category, activity, type, vibe, status, link FROM records ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	recs := []models.Record{}
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.Category, &rec.Activity, &rec.Type, &rec.Vibe, &rec.Status, &rec.Link); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	data, err := json.Marshal(document{Record: recs})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return json.RawMessage(data), nil
}

func (s *SQLiteStore) Persist(ctx context.Context, recs []models.Record) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	for _, rec := range recs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO records (category, activity, type, vibe, status, link) VALUES (?, ?, ?, ?, ?, ?)",
			rec.Category, rec.Activity, rec.Type, rec.Vibe, rec.Status, rec.Link)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Source() string {
	return s.path
}
