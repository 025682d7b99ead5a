// Package backup serializes the entire record store into one portable,
// versioned JSON document and restores it, replacing all existing records.
//
// The document format is version 1:
//
//	{
//	  "version": 1,
//	  "exportedAt": "2026-08-29T12:00:00Z",
//	  "diary":  [ {"id","date","text","tags","updatedAt"} ... ],
//	  "cash":   [ {"id","dateTime","type","amountCents","category","method","description"} ... ],
//	  "attach": [ {"id","txId","mime","blob","thumbBlob","createdAt"} ... ]
//	}
//
// Binary attachment payloads travel as data URIs ("data:<mime>;base64,...")
// so the whole snapshot is a single text document. Large attachment sets
// produce proportionally large documents; that is an accepted tradeoff.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/store"
)

// FormatVersion is the newest snapshot format this build understands.
// Documents declaring a higher version are rejected rather than guessed at.
const FormatVersion = 1

// Document is one complete snapshot of the store.
type Document struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exportedAt"`
	Diary      []diaryRecord  `json:"diary"`
	Cash       []cashRecord   `json:"cash"`
	Attach     []attachRecord `json:"attach"`
}

// diaryRecord carries both id and date fields, redundantly equal, to stay
// byte-compatible with documents written by the original web app.
type diaryRecord struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags"`
	UpdatedAt int64    `json:"updatedAt,omitempty"`
}

type cashRecord struct {
	ID          string `json:"id"`
	DateTime    int64  `json:"dateTime"`
	Type        string `json:"type"`
	AmountCents int64  `json:"amountCents"`
	Category    string `json:"category"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type attachRecord struct {
	ID        string  `json:"id"`
	TxID      string  `json:"txId"`
	MIME      string  `json:"mime"`
	Blob      string  `json:"blob"`      // data:<mime>;base64,...
	ThumbBlob *string `json:"thumbBlob"` // null when the attachment has no thumbnail
	CreatedAt int64   `json:"createdAt"`
}

// Export reads every record of every kind, binary payloads included, and
// packs them into a snapshot document. It never mutates the store.
func Export(ctx context.Context, st *store.Store) (*Document, error) {
	entries, err := st.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("export journal: %w", err)
	}
	txns, err := st.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("export cash book: %w", err)
	}
	atts, err := st.Attachments(ctx)
	if err != nil {
		return nil, fmt.Errorf("export attachments: %w", err)
	}

	doc := &Document{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Diary:      make([]diaryRecord, 0, len(entries)),
		Cash:       make([]cashRecord, 0, len(txns)),
		Attach:     make([]attachRecord, 0, len(atts)),
	}
	for _, e := range entries {
		doc.Diary = append(doc.Diary, diaryRecord{
			ID:        e.Date,
			Date:      e.Date,
			Text:      e.Text,
			Tags:      e.Tags,
			UpdatedAt: e.UpdatedAt,
		})
	}
	for _, t := range txns {
		doc.Cash = append(doc.Cash, cashRecord{
			ID:          t.ID,
			DateTime:    t.DateTime,
			Type:        string(t.Type),
			AmountCents: t.AmountCents,
			Category:    t.Category,
			Method:      t.Method,
			Description: t.Description,
		})
	}
	for _, a := range atts {
		rec := attachRecord{
			ID:        a.ID,
			TxID:      a.TxID,
			MIME:      a.MIME,
			Blob:      agenda.EncodeDataURL(a.MIME, a.Blob),
			CreatedAt: a.CreatedAt,
		}
		if a.Thumb != nil {
			thumb := agenda.EncodeDataURL(a.MIME, a.Thumb)
			rec.ThumbBlob = &thumb
		}
		doc.Attach = append(doc.Attach, rec)
	}
	return doc, nil
}

// Encode writes the document as JSON.
func (d *Document) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode parses and validates a snapshot document. The format version is
// sniffed from the raw JSON before the strict decode, so a document of an
// unrecognized shape or of a future version fails with
// agenda.ErrMalformedSnapshot without any further processing. Absent
// collections decode as empty, not as an error.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var loose any
	if err := json.Unmarshal(data, &loose); err != nil {
		return nil, fmt.Errorf("%w: %v", agenda.ErrMalformedSnapshot, err)
	}
	raw, err := jsonpath.Get("$.version", loose)
	if err != nil {
		return nil, fmt.Errorf("%w: missing version field", agenda.ErrMalformedSnapshot)
	}
	version, ok := raw.(float64)
	if !ok || version != float64(int(version)) {
		return nil, fmt.Errorf("%w: version is not an integer", agenda.ErrMalformedSnapshot)
	}
	if int(version) < 1 || int(version) > FormatVersion {
		return nil, fmt.Errorf("%w: format version %d not supported (newest understood: %d)",
			agenda.ErrMalformedSnapshot, int(version), FormatVersion)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", agenda.ErrMalformedSnapshot, err)
	}
	return &doc, nil
}

// Import destructively replaces the journal, cash and attachment
// collections with the document's records. THIS DISCARDS ALL EXISTING
// RECORDS; callers must only invoke it on an explicit user request.
//
// Payloads are decoded back to binary before the destructive step, so a
// malformed document fails with the store untouched; the replace itself is
// one atomic store transaction, and a medium failure during it rolls back
// to the previous state.
func Import(ctx context.Context, st *store.Store, doc *Document) error {
	if doc.Version < 1 || doc.Version > FormatVersion {
		return fmt.Errorf("%w: format version %d not supported (newest understood: %d)",
			agenda.ErrMalformedSnapshot, doc.Version, FormatVersion)
	}

	entries := make([]agenda.JournalEntry, 0, len(doc.Diary))
	for _, rec := range doc.Diary {
		date := rec.Date
		if date == "" {
			date = rec.ID
		}
		entries = append(entries, agenda.JournalEntry{
			Date:      date,
			Text:      rec.Text,
			Tags:      rec.Tags,
			UpdatedAt: rec.UpdatedAt,
		})
	}

	txns := make([]agenda.Transaction, 0, len(doc.Cash))
	for _, rec := range doc.Cash {
		txns = append(txns, agenda.Transaction{
			ID:          rec.ID,
			DateTime:    rec.DateTime,
			Type:        agenda.Direction(rec.Type),
			AmountCents: rec.AmountCents,
			Category:    rec.Category,
			Method:      rec.Method,
			Description: rec.Description,
		})
	}

	atts := make([]agenda.Attachment, 0, len(doc.Attach))
	for _, rec := range doc.Attach {
		blob, err := agenda.DecodeDataURL(rec.Blob)
		if err != nil {
			return fmt.Errorf("attachment %s payload: %w", rec.ID, err)
		}
		var thumb []byte
		if rec.ThumbBlob != nil {
			if thumb, err = agenda.DecodeDataURL(*rec.ThumbBlob); err != nil {
				return fmt.Errorf("attachment %s thumbnail: %w", rec.ID, err)
			}
		}
		atts = append(atts, agenda.Attachment{
			ID:        rec.ID,
			TxID:      rec.TxID,
			MIME:      rec.MIME,
			Blob:      blob,
			Thumb:     thumb,
			CreatedAt: rec.CreatedAt,
		})
	}

	return st.ReplaceAll(ctx, entries, txns, atts)
}
