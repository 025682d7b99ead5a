package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmesquita/agenda"
)

// ReplaceAll atomically swaps the journal, cash and attachment collections
// for the given records. It runs in a single database transaction, so
// concurrent readers observe either the previous state or the new one,
// never a partially-cleared store, and a failure rolls everything back.
//
// Records are validated before the destructive step begins; an invalid
// record aborts the replace with the store untouched. Journal last-modified
// stamps are regenerated. The config collection is not touched: snapshots
// do not carry it.
//
// This is the backup-import primitive, the only operation allowed to
// discard existing records, and must only run on an explicit user request.
func (s *Store) ReplaceAll(ctx context.Context, entries []agenda.JournalEntry, txns []agenda.Transaction, atts []agenda.Attachment) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, a := range atts {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage(err)
	}
	defer tx.Rollback()

	for _, table := range []string{"diary", "cash", "attach"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return storage(fmt.Errorf("clear %s: %w", table, err))
		}
	}

	stamp := s.now().UnixMilli()
	for _, e := range entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("encode tags: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO diary (date, text, tags, updated_at) VALUES (?, ?, ?, ?)`,
			e.Date, e.Text, string(encoded), stamp); err != nil {
			return storage(err)
		}
	}
	for _, t := range txns {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cash (id, date_time, type, amount_cents, category, method, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.DateTime, string(t.Type), t.AmountCents, t.Category, t.Method, t.Description); err != nil {
			return storage(err)
		}
	}
	for _, a := range atts {
		var thumb any
		if a.Thumb != nil {
			thumb = a.Thumb
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO attach (id, tx_id, mime, blob, thumb, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, a.TxID, a.MIME, a.Blob, thumb, a.CreatedAt); err != nil {
			return storage(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storage(err)
	}
	return nil
}
