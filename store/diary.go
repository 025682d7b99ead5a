package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmesquita/agenda"
)

// UpsertEntry inserts or replaces the journal entry for e.Date and stamps
// its last-modified time. Calling it twice with the same content is
// idempotent apart from the stamp.
func (s *Store) UpsertEntry(ctx context.Context, e agenda.JournalEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO diary (date, text, tags, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			text = excluded.text,
			tags = excluded.tags,
			updated_at = excluded.updated_at`,
		e.Date, e.Text, string(encoded), s.now().UnixMilli())
	if err != nil {
		return storage(err)
	}
	return nil
}

// Entry returns the journal entry for the given date, or ok=false when no
// entry exists for it.
func (s *Store) Entry(ctx context.Context, date string) (agenda.JournalEntry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT date, text, tags, updated_at FROM diary WHERE date = ?`, date)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return agenda.JournalEntry{}, false, nil
	}
	if err != nil {
		return agenda.JournalEntry{}, false, storage(err)
	}
	return e, true, nil
}

// Entries returns every journal entry ordered by date ascending.
func (s *Store) Entries(ctx context.Context) ([]agenda.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, text, tags, updated_at FROM diary ORDER BY date ASC`)
	if err != nil {
		return nil, storage(err)
	}
	defer rows.Close()

	var entries []agenda.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, storage(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storage(err)
	}
	return entries, nil
}

// SearchEntries returns the entries whose text or space-joined tags contain
// the query, ignoring case, in the same order as Entries. An empty query
// returns everything.
//
// This is a linear scan over all entries, not an index. It is fine for the
// working set this store is built for (about one year of daily entries) and
// it never caps the result.
func (s *Store) SearchEntries(ctx context.Context, query string) ([]agenda.JournalEntry, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	var found []agenda.JournalEntry
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Text), q) ||
			strings.Contains(strings.ToLower(strings.Join(e.Tags, " ")), q) {
			found = append(found, e)
		}
	}
	return found, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (agenda.JournalEntry, error) {
	var e agenda.JournalEntry
	var tags string
	if err := row.Scan(&e.Date, &e.Text, &tags, &e.UpdatedAt); err != nil {
		return agenda.JournalEntry{}, err
	}
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return agenda.JournalEntry{}, fmt.Errorf("decode tags for %s: %w", e.Date, err)
	}
	return e, nil
}
