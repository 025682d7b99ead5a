package store

import (
	"context"

	"github.com/dmesquita/agenda"
)

// AddTransaction stores a new cash transaction.
func (s *Store) AddTransaction(ctx context.Context, t agenda.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cash (id, date_time, type, amount_cents, category, method, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.DateTime, string(t.Type), t.AmountCents, t.Category, t.Method, t.Description)
	if err != nil {
		return storage(err)
	}
	return nil
}

// DeleteTransaction removes the transaction with the given id. Deleting a
// transaction does not delete its attachments: that is the caller's
// responsibility, using AttachmentsFor to find them first.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cash WHERE id = ?`, id); err != nil {
		return storage(err)
	}
	return nil
}

// Transactions returns every transaction ordered by timestamp descending,
// most recent first. This ordering governs listings; the report engine
// re-sorts ascending for document layout.
func (s *Store) Transactions(ctx context.Context) ([]agenda.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT id, date_time, type, amount_cents, category, method, description
		FROM cash ORDER BY date_time DESC, id`)
}

// TransactionsInRange returns the transactions with startMs <= timestamp
// <= endMs, both bounds inclusive, ordered like Transactions.
func (s *Store) TransactionsInRange(ctx context.Context, startMs, endMs int64) ([]agenda.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT id, date_time, type, amount_cents, category, method, description
		FROM cash WHERE date_time BETWEEN ? AND ?
		ORDER BY date_time DESC, id`, startMs, endMs)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]agenda.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage(err)
	}
	defer rows.Close()

	var txns []agenda.Transaction
	for rows.Next() {
		var t agenda.Transaction
		var typ string
		if err := rows.Scan(&t.ID, &t.DateTime, &typ, &t.AmountCents, &t.Category, &t.Method, &t.Description); err != nil {
			return nil, storage(err)
		}
		t.Type = agenda.Direction(typ)
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storage(err)
	}
	return txns, nil
}
