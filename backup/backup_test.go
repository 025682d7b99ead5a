package backup

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "agenda.db"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func seedStore(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()

	if err := st.UpsertEntry(ctx, agenda.JournalEntry{
		Date: "2026-01-02", Text: "dia longo na clínica", Tags: []string{"health", "work"},
	}); err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}
	if err := st.AddTransaction(ctx, agenda.Transaction{
		ID: "tx-1", DateTime: 1735822800000, Type: agenda.Out, AmountCents: 12050,
		Category: "Mercado", Method: "Pix", Description: "compras",
	}); err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if err := st.AddAttachment(ctx, agenda.Attachment{
		ID: "att-1", TxID: "tx-1", MIME: "image/jpeg",
		Blob: []byte{0xff, 0xd8, 0x10, 0x20}, Thumb: []byte{0xff, 0xd8, 0x30},
		CreatedAt: 1735822900000,
	}); err != nil {
		t.Fatalf("AddAttachment() error = %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	seedStore(t, src)

	doc, err := Export(ctx, src)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if doc.Version != FormatVersion {
		t.Fatalf("Export() Version = %d, want %d", doc.Version, FormatVersion)
	}

	// Through the wire format and into a second, empty store.
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := newTestStore(t)
	if err := Import(ctx, dst, decoded); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	entries, err := dst.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2026-01-02" ||
		entries[0].Text != "dia longo na clínica" ||
		!reflect.DeepEqual(entries[0].Tags, []string{"health", "work"}) {
		t.Fatalf("imported entry = %+v", entries[0])
	}

	txns, err := dst.Transactions(ctx)
	if err != nil {
		t.Fatalf("Transactions() error = %v", err)
	}
	want := agenda.Transaction{
		ID: "tx-1", DateTime: 1735822800000, Type: agenda.Out, AmountCents: 12050,
		Category: "Mercado", Method: "Pix", Description: "compras",
	}
	if len(txns) != 1 || txns[0] != want {
		t.Fatalf("imported transaction = %+v, want %+v", txns[0], want)
	}

	atts, err := dst.Attachments(ctx)
	if err != nil {
		t.Fatalf("Attachments() error = %v", err)
	}
	if len(atts) != 1 ||
		!bytes.Equal(atts[0].Blob, []byte{0xff, 0xd8, 0x10, 0x20}) ||
		!bytes.Equal(atts[0].Thumb, []byte{0xff, 0xd8, 0x30}) {
		t.Fatalf("imported attachment payloads = %+v", atts[0])
	}
}

func TestExportDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedStore(t, st)

	if _, err := Export(ctx, st); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	entries, _ := st.Entries(ctx)
	txns, _ := st.Transactions(ctx)
	atts, _ := st.Attachments(ctx)
	if len(entries) != 1 || len(txns) != 1 || len(atts) != 1 {
		t.Fatalf("Export() changed the store: %d entries, %d txns, %d atts", len(entries), len(txns), len(atts))
	}
}

func TestExportEncodesPayloadsAsDataURLs(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedStore(t, st)

	doc, err := Export(ctx, st)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasPrefix(doc.Attach[0].Blob, "data:image/jpeg;base64,") {
		t.Fatalf("attachment payload = %q, want a data URI", doc.Attach[0].Blob)
	}
	if doc.Attach[0].ThumbBlob == nil ||
		!strings.HasPrefix(*doc.Attach[0].ThumbBlob, "data:image/jpeg;base64,") {
		t.Fatalf("attachment thumbnail not encoded as data URI: %+v", doc.Attach[0].ThumbBlob)
	}
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	in := `{"version": 2, "exportedAt": "2026-08-29T12:00:00Z", "diary": [], "cash": [], "attach": []}`
	_, err := Decode(strings.NewReader(in))
	if !errors.Is(err, agenda.ErrMalformedSnapshot) {
		t.Fatalf("Decode() of future version error = %v, want ErrMalformedSnapshot", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "this is not json"},
		{"no version", `{"diary": []}`},
		{"version zero", `{"version": 0}`},
		{"fractional version", `{"version": 1.5}`},
		{"version as string", `{"version": "1"}`},
		{"wrong collection shape", `{"version": 1, "diary": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.in)); !errors.Is(err, agenda.ErrMalformedSnapshot) {
				t.Fatalf("Decode(%q) error = %v, want ErrMalformedSnapshot", tt.in, err)
			}
		})
	}
}

func TestDecodeToleratesAbsentCollections(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"version": 1}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Diary) != 0 || len(doc.Cash) != 0 || len(doc.Attach) != 0 {
		t.Fatalf("absent collections decoded non-empty: %+v", doc)
	}
}

func TestImportBadSnapshotLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedStore(t, st)

	tests := []struct {
		name string
		doc  *Document
	}{
		{"future version", &Document{Version: FormatVersion + 1}},
		{"broken payload", &Document{
			Version: 1,
			Attach:  []attachRecord{{ID: "a", TxID: "t", MIME: "image/jpeg", Blob: "not a data url"}},
		}},
		{"invalid record", &Document{
			Version: 1,
			Cash:    []cashRecord{{ID: "bad", Type: "out", AmountCents: -1}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Import(ctx, st, tt.doc); err == nil {
				t.Fatal("Import() of a bad snapshot succeeded")
			}
			entries, _ := st.Entries(ctx)
			txns, _ := st.Transactions(ctx)
			atts, _ := st.Attachments(ctx)
			if len(entries) != 1 || len(txns) != 1 || len(atts) != 1 {
				t.Fatalf("failed import changed the store: %d entries, %d txns, %d atts",
					len(entries), len(txns), len(atts))
			}
		})
	}
}

func TestImportAcceptsLegacyDiaryRecords(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Documents from the original app carry the date in the id field only.
	doc := &Document{
		Version: 1,
		Diary:   []diaryRecord{{ID: "2026-01-02", Text: "legado", Tags: []string{"old"}}},
	}
	if err := Import(ctx, st, doc); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	entry, ok, err := st.Entry(ctx, "2026-01-02")
	if err != nil || !ok {
		t.Fatalf("Entry() = ok %v, err %v", ok, err)
	}
	if entry.Text != "legado" {
		t.Fatalf("Entry().Text = %q, want legado", entry.Text)
	}
}
