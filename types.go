package agenda

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date key format of journal entries.
const DateLayout = "2006-01-02"

// Direction tells whether a transaction moves money in or out.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case In:
		return In, nil
	case Out:
		return Out, nil
	default:
		return "", fmt.Errorf("%w: direction must be %q or %q, got %q", ErrInvalidRecord, In, Out, s)
	}
}

// JournalEntry is one day's free-form text with an unordered tag set.
// The calendar date is the identity key: at most one entry per date.
type JournalEntry struct {
	Date      string   `json:"date"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags"`
	UpdatedAt int64    `json:"updatedAt,omitempty"` // unix milliseconds, stamped by the store
}

// Validate checks the entry's data-model invariants.
func (e JournalEntry) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: journal date %q is not a YYYY-MM-DD date", ErrInvalidRecord, e.Date)
	}
	return nil
}

// Transaction is one cash-book movement. Immutable once created, except
// for deletion.
type Transaction struct {
	ID          string    `json:"id"`
	DateTime    int64     `json:"dateTime"` // unix milliseconds
	Type        Direction `json:"type"`
	AmountCents int64     `json:"amountCents"` // minor units, always positive
	Category    string    `json:"category"`
	Method      string    `json:"method"`
	Description string    `json:"description"`
}

// NewTransaction creates a transaction with a fresh opaque id.
func NewTransaction(dateTime int64, dir Direction, amountCents int64, category, method, description string) Transaction {
	return Transaction{
		ID:          NewID(),
		DateTime:    dateTime,
		Type:        dir,
		AmountCents: amountCents,
		Category:    category,
		Method:      method,
		Description: description,
	}
}

// Validate checks the transaction's data-model invariants.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction without id", ErrInvalidRecord)
	}
	if t.Type != In && t.Type != Out {
		return fmt.Errorf("%w: transaction %s direction %q", ErrInvalidRecord, t.ID, t.Type)
	}
	if t.AmountCents <= 0 {
		return fmt.Errorf("%w: transaction %s amount %d is not a positive integer", ErrInvalidRecord, t.ID, t.AmountCents)
	}
	return nil
}

// Attachment is a photographic receipt owned by exactly one transaction.
// Thumb is an optional downscaled rendition and may be nil.
type Attachment struct {
	ID        string `json:"id"`
	TxID      string `json:"txId"`
	MIME      string `json:"mime"`
	Blob      []byte `json:"-"`
	Thumb     []byte `json:"-"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// NewAttachment creates an attachment for the given transaction with a
// fresh opaque id, stamped with the given creation time.
func NewAttachment(txID, mime string, blob, thumb []byte, createdAt int64) Attachment {
	return Attachment{
		ID:        NewID(),
		TxID:      txID,
		MIME:      mime,
		Blob:      blob,
		Thumb:     thumb,
		CreatedAt: createdAt,
	}
}

// Validate checks the attachment's data-model invariants.
func (a Attachment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: attachment without id", ErrInvalidRecord)
	}
	if a.TxID == "" {
		return fmt.Errorf("%w: attachment %s without owning transaction", ErrInvalidRecord, a.ID)
	}
	if len(a.Blob) == 0 {
		return fmt.Errorf("%w: attachment %s without payload", ErrInvalidRecord, a.ID)
	}
	return nil
}

// NewID returns a fresh opaque record id.
func NewID() string { return uuid.NewString() }

// Today returns the current journal date key.
func Today() string { return time.Now().Format(DateLayout) }
