// Package store caches fetched datasets in a local SQLite file so the
// dashboard can open offline with the last good snapshot.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Snapshot is one cached dataset with provenance.
type Snapshot struct {
	ID        string
	Origin    string
	FetchedAt time.Time
	Records   []survey.Record
	Summary   *survey.Summary
}

// SnapshotStore persists datasets in SQLite.
type SnapshotStore struct {
	db *sql.DB
}

// ErrNoSnapshot is returned by Latest when the cache is empty.
var ErrNoSnapshot = fmt.Errorf("no cached snapshot")

// Open initializes the SQLite database at path, creating directories and the
// schema as needed.
func Open(path string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	s := &SnapshotStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SnapshotStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		fetched_at DATETIME NOT NULL,
		records TEXT NOT NULL,
		summary TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_fetched_at ON snapshots(fetched_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save stores a dataset and returns its snapshot id.
func (s *SnapshotStore) Save(ctx context.Context, origin string, fetchedAt time.Time, records []survey.Record, summary *survey.Summary) (string, error) {
	recJSON, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode records: %w", err)
	}

	var sumJSON []byte
	if summary != nil {
		sumJSON, err = json.Marshal(summary)
		if err != nil {
			return "", fmt.Errorf("encode summary: %w", err)
		}
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, origin, fetched_at, records, summary) VALUES (?, ?, ?, ?, ?)`,
		id, origin, fetchedAt.UTC(), string(recJSON), nullableString(sumJSON))
	if err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return id, nil
}

// Latest returns the most recently fetched snapshot, or ErrNoSnapshot.
func (s *SnapshotStore) Latest(ctx context.Context) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, origin, fetched_at, records, summary
		 FROM snapshots ORDER BY fetched_at DESC LIMIT 1`)

	var snap Snapshot
	var recJSON string
	var sumJSON sql.NullString
	if err := row.Scan(&snap.ID, &snap.Origin, &snap.FetchedAt, &recJSON, &sumJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(recJSON), &snap.Records); err != nil {
		return nil, fmt.Errorf("decode cached records: %w", err)
	}
	if sumJSON.Valid && sumJSON.String != "" {
		snap.Summary = &survey.Summary{}
		if err := json.Unmarshal([]byte(sumJSON.String), snap.Summary); err != nil {
			return nil, fmt.Errorf("decode cached summary: %w", err)
		}
	}
	return &snap, nil
}

// Prune deletes all but the newest keep snapshots.
func (s *SnapshotStore) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		keep = 1
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY fetched_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Count returns the number of cached snapshots.
func (s *SnapshotStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}

func nullableString(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
