package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/foodlens/labelscan/pkg/labelscan/history"
	"github.com/foodlens/labelscan/pkg/labelscan/product"
)

// sqliteStore implements history.Store on a SQLite database. Summaries
// are serialized to a JSON column; the table is pruned to
// history.Capacity on every append.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite-backed scan history with WAL mode
// enabled.
func Open(ctx context.Context, path string) (history.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	summary TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Append inserts the entry and prunes the table to capacity.
func (s *sqliteStore) Append(ctx context.Context, e history.Entry) error {
	summary, err := json.Marshal(e.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scans (id, created_at, summary) VALUES (?, ?, ?)`,
		e.ID, e.CreatedAt.UTC().Format(time.RFC3339Nano), string(summary))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
DELETE FROM scans WHERE id NOT IN (
	SELECT id FROM scans ORDER BY created_at DESC, id DESC LIMIT ?
)`, history.Capacity)
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	if limit <= 0 {
		limit = history.Capacity
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, summary FROM scans ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var (
			entry     history.Entry
			createdAt string
			summary   string
		)
		if err := rows.Scan(&entry.ID, &createdAt, &summary); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		entry.CreatedAt = ts

		var sum product.Summary
		if err := json.Unmarshal([]byte(summary), &sum); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		entry.Summary = sum

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
