// Package store persists journal entries, cash transactions, receipt
// attachments and scalar configuration in a single SQLite database file.
//
// The Store is a single-owner handle: open it once at process start, pass
// it through every operation, close it on shutdown. Every operation either
// completes with its effect durable or fails wrapping
// agenda.ErrStorageUnavailable with prior state unchanged; records that
// violate a data-model invariant are rejected with agenda.ErrInvalidRecord
// before any write is attempted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/dmesquita/agenda"
)

// schema mirrors the collections of the record keeper: one table per
// record kind, with the secondary lookups the callers rely on.
const schema = `
CREATE TABLE IF NOT EXISTS diary (
    date       TEXT PRIMARY KEY,           -- YYYY-MM-DD, one entry per date
    text       TEXT NOT NULL,
    tags       TEXT NOT NULL DEFAULT '[]', -- JSON array of strings
    updated_at INTEGER NOT NULL            -- unix milliseconds
);

CREATE INDEX IF NOT EXISTS idx_diary_updated_at ON diary(updated_at);

CREATE TABLE IF NOT EXISTS cash (
    id           TEXT PRIMARY KEY,
    date_time    INTEGER NOT NULL,         -- unix milliseconds
    type         TEXT NOT NULL,            -- 'in' | 'out'
    amount_cents INTEGER NOT NULL,
    category     TEXT NOT NULL,
    method       TEXT NOT NULL,
    description  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cash_date_time ON cash(date_time);

CREATE TABLE IF NOT EXISTS attach (
    id         TEXT PRIMARY KEY,
    tx_id      TEXT NOT NULL,
    mime       TEXT NOT NULL,
    blob       BLOB NOT NULL,
    thumb      BLOB,                       -- NULL when no thumbnail exists
    created_at INTEGER NOT NULL            -- unix milliseconds
);

CREATE INDEX IF NOT EXISTS idx_attach_tx_id ON attach(tx_id);

CREATE TABLE IF NOT EXISTS config (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store is the durable record store.
type Store struct {
	db  *sql.DB
	now func() time.Time // updated_at stamps; replaced in tests
}

// Open opens (creating if needed) the database at path, enables WAL mode
// and foreign keys, and initializes the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storage(fmt.Errorf("create database directory: %w", err))
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storage(fmt.Errorf("open database: %w", err))
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storage(fmt.Errorf("ping database: %w", err))
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, storage(fmt.Errorf("initialize schema: %w", err))
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// storage tags a medium failure with the ErrStorageUnavailable taxonomy.
func storage(err error) error {
	return fmt.Errorf("%w: %v", agenda.ErrStorageUnavailable, err)
}
