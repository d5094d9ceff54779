// Package sqlite implements the note repository on SQLite. Each note is a
// single INSERT, so appends are atomic per statement and concurrent saves
// for the same user cannot lose writes; Fetch orders by rowid to preserve
// insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/binguliki/IntelliLearn/internal/model"
)

// Store implements notes.Repository using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a SQLite-backed note repository at dbPath.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	// WAL mode for concurrent readers during writes.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id, id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Append adds one note for the user. Implements notes.Repository.
func (s *Store) Append(ctx context.Context, userID string, note model.Note) (model.Note, error) {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (user_id, title, content, created_at) VALUES (?, ?, ?, ?)`,
		userID, note.Title, note.Content, now.Unix(),
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Note{}, fmt.Errorf("read note id: %w", err)
	}

	note.ID = id
	note.CreatedAt = now
	return note, nil
}

// Fetch returns the user's notes in insertion order. Implements notes.Repository.
func (s *Store) Fetch(ctx context.Context, userID string) ([]model.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at FROM notes WHERE user_id = ? ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	out := []model.Note{}
	for rows.Next() {
		var (
			n         model.Note
			createdAt int64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		n.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}

	return out, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
