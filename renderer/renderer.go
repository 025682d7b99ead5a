// Package renderer builds markdown views of records for terminal display.
package renderer

import (
	"bytes"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	md "github.com/nao1215/markdown"

	"github.com/dmesquita/agenda"
)

// Entries renders journal entries as a markdown table with a short text
// excerpt per entry.
func Entries(entries []agenda.JournalEntry) string {
	if len(entries) == 0 {
		return "Nothing yet.\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Date, excerpt(e.Text, 80), strings.Join(e.Tags, ", ")})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{
		Header: []string{"Date", "Text", "Tags"},
		Rows:   rows,
	})
	return doc.String()
}

// Transactions renders the cash listing in the order the store hands it
// out: newest first.
func Transactions(txns []agenda.Transaction, currency string) string {
	if len(txns) == 0 {
		return "Nothing yet.\n"
	}

	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		label := "out"
		if t.Type == agenda.In {
			label = "in"
		}
		rows = append(rows, []string{
			shortID(t.ID),
			time.UnixMilli(t.DateTime).Format("02/01/2006 15:04"),
			label,
			agenda.FormatCents(t.AmountCents, currency),
			t.Category,
			t.Method,
			excerpt(t.Description, 40),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Type", "Amount", "Category", "Method", "Description"},
		Rows:   rows,
	})
	return doc.String()
}

// Attachments renders an attachment listing without payloads.
func Attachments(atts []agenda.Attachment) string {
	if len(atts) == 0 {
		return "No attachments.\n"
	}

	rows := make([][]string, 0, len(atts))
	for _, a := range atts {
		thumb := "no"
		if a.Thumb != nil {
			thumb = "yes"
		}
		rows = append(rows, []string{
			shortID(a.ID),
			a.MIME,
			byteSize(len(a.Blob)),
			thumb,
			time.UnixMilli(a.CreatedAt).Format("02/01/2006 15:04"),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{
		Header: []string{"ID", "MIME", "Size", "Thumb", "Created"},
		Rows:   rows,
	})
	return doc.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "…"
}

func byteSize(n int) string {
	const kb = 1024
	switch {
	case n >= kb*kb:
		return strconv.Itoa(n/(kb*kb)) + " MiB"
	case n >= kb:
		return strconv.Itoa(n/kb) + " KiB"
	default:
		return strconv.Itoa(n) + " B"
	}
}
