package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dmesquita/agenda"
)

func TestReplaceAllSwapsEverything(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Pre-existing state that must be discarded.
	if err := st.UpsertEntry(ctx, agenda.JournalEntry{Date: "2025-12-31", Text: "old"}); err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}
	seedTransaction(t, st, "old-tx", 500, agenda.Out, 100)
	if err := st.AddAttachment(ctx, agenda.Attachment{
		ID: "old-att", TxID: "old-tx", MIME: "image/jpeg", Blob: []byte{1}, CreatedAt: 500,
	}); err != nil {
		t.Fatalf("AddAttachment() error = %v", err)
	}
	if err := st.SetConfig(ctx, "currency", "EUR"); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}

	err := st.ReplaceAll(ctx,
		[]agenda.JournalEntry{{Date: "2026-01-01", Text: "new"}},
		[]agenda.Transaction{{ID: "new-tx", DateTime: 1000, Type: agenda.In, AmountCents: 200}},
		[]agenda.Attachment{{ID: "new-att", TxID: "new-tx", MIME: "image/jpeg", Blob: []byte{2}, CreatedAt: 1000}},
	)
	if err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	entries, _ := st.Entries(ctx)
	if len(entries) != 1 || entries[0].Date != "2026-01-01" {
		t.Fatalf("Entries() after replace = %+v, want only 2026-01-01", entries)
	}
	if entries[0].UpdatedAt != testStamp.UnixMilli() {
		t.Fatalf("replaced entry UpdatedAt = %d, want a regenerated stamp", entries[0].UpdatedAt)
	}
	txns, _ := st.Transactions(ctx)
	if len(txns) != 1 || txns[0].ID != "new-tx" {
		t.Fatalf("Transactions() after replace = %+v, want only new-tx", txns)
	}
	atts, _ := st.Attachments(ctx)
	if len(atts) != 1 || atts[0].ID != "new-att" {
		t.Fatalf("Attachments() after replace = %+v, want only new-att", atts)
	}

	// Settings survive the replace.
	val, ok, err := st.Config(ctx, "currency")
	if err != nil || !ok || val != "EUR" {
		t.Fatalf("Config() after replace = %q, ok %v, err %v; want EUR kept", val, ok, err)
	}
}

func TestReplaceAllToEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedTransaction(t, st, "old-tx", 500, agenda.Out, 100)

	if err := st.ReplaceAll(ctx, nil, nil, nil); err != nil {
		t.Fatalf("ReplaceAll() with empty collections error = %v", err)
	}
	txns, _ := st.Transactions(ctx)
	if len(txns) != 0 {
		t.Fatalf("Transactions() after empty replace = %+v, want none", txns)
	}
}

func TestReplaceAllRejectsInvalidBeforeClearing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedTransaction(t, st, "precious", 500, agenda.Out, 100)

	err := st.ReplaceAll(ctx, nil,
		[]agenda.Transaction{{ID: "bad", DateTime: 1000, Type: agenda.In, AmountCents: -5}}, nil)
	if !errors.Is(err, agenda.ErrInvalidRecord) {
		t.Fatalf("ReplaceAll() error = %v, want ErrInvalidRecord", err)
	}

	// The invalid batch must not have touched the store.
	txns, _ := st.Transactions(ctx)
	if len(txns) != 1 || txns[0].ID != "precious" {
		t.Fatalf("Transactions() after failed replace = %+v, want precious intact", txns)
	}
}
