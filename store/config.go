package store

import (
	"context"
	"database/sql"
	"errors"
)

// SetConfig inserts or replaces a scalar configuration value.
func (s *Store) SetConfig(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return storage(err)
	}
	return nil
}

// Config returns the configuration value for key, or ok=false when the key
// was never set.
func (s *Store) Config(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM config WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storage(err)
	}
	return value, true, nil
}
