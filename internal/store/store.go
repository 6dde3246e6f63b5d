// internal/store/store.go
//
// Snapshot persistence for game sessions, backed by embedded SQLite. One row
// per session, overwritten on every save, so a restarted process can resume
// any live game from its last checkpoint.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mwhitten/boardwalk/engine"
)

// ErrNotFound reports that no snapshot exists for the requested session.
var ErrNotFound = errors.New("store: snapshot not found")

// Store persists engine snapshots in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at dsn, with a busy
// timeout and WAL journaling, and ensures the schema exists.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set pragmas: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			session_id TEXT PRIMARY KEY,
			state      TEXT NOT NULL,
			saved_at   INTEGER NOT NULL
		);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save writes the session's snapshot, replacing any previous one.
func (s *Store) Save(ctx context.Context, sessionID uuid.UUID, snap engine.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (session_id, state, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at;`,
		sessionID.String(), string(raw), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("store: save %s: %w", sessionID, err)
	}
	return nil
}

// Load returns the last saved snapshot for the session, or ErrNotFound.
func (s *Store) Load(ctx context.Context, sessionID uuid.UUID) (engine.Snapshot, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM snapshots WHERE session_id = ?;`, sessionID.String()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("store: load %s: %w", sessionID, err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return engine.Snapshot{}, fmt.Errorf("store: decode %s: %w", sessionID, err)
	}
	return snap, nil
}

// Delete removes the session's snapshot, if any.
func (s *Store) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE session_id = ?;`, sessionID.String()); err != nil {
		return fmt.Errorf("store: delete %s: %w", sessionID, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
