package store

import (
	"context"

	"github.com/dmesquita/agenda"
)

// AddAttachment stores a receipt attachment, full payload and optional
// thumbnail included.
func (s *Store) AddAttachment(ctx context.Context, a agenda.Attachment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	var thumb any
	if a.Thumb != nil {
		thumb = a.Thumb
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attach (id, tx_id, mime, blob, thumb, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.TxID, a.MIME, a.Blob, thumb, a.CreatedAt)
	if err != nil {
		return storage(err)
	}
	return nil
}

// DeleteAttachment removes the attachment with the given id.
func (s *Store) DeleteAttachment(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attach WHERE id = ?`, id); err != nil {
		return storage(err)
	}
	return nil
}

// AttachmentsFor returns every attachment owned by the given transaction,
// in creation order. This is the lookup that lets callers honor the
// no-orphan rule when they delete a transaction.
func (s *Store) AttachmentsFor(ctx context.Context, txID string) ([]agenda.Attachment, error) {
	return s.queryAttachments(ctx, `
		SELECT id, tx_id, mime, blob, thumb, created_at
		FROM attach WHERE tx_id = ? ORDER BY created_at, id`, txID)
}

// Attachments returns every attachment in the store, payloads included.
// Used by the backup codec, which exports everything.
func (s *Store) Attachments(ctx context.Context) ([]agenda.Attachment, error) {
	return s.queryAttachments(ctx, `
		SELECT id, tx_id, mime, blob, thumb, created_at
		FROM attach ORDER BY created_at, id`)
}

func (s *Store) queryAttachments(ctx context.Context, query string, args ...any) ([]agenda.Attachment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage(err)
	}
	defer rows.Close()

	var atts []agenda.Attachment
	for rows.Next() {
		var a agenda.Attachment
		if err := rows.Scan(&a.ID, &a.TxID, &a.MIME, &a.Blob, &a.Thumb, &a.CreatedAt); err != nil {
			return nil, storage(err)
		}
		atts = append(atts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storage(err)
	}
	return atts, nil
}
