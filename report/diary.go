package report

import (
	"fmt"
	"strings"

	"github.com/dmesquita/agenda"
)

// Diary renders journal entries in the given order: per entry a one-line
// header (date and comma-joined tags), the body word-wrapped at wrapBudget
// characters, and a thin separator. An entry with an empty body renders
// the "(sem texto)" placeholder instead of failing the document.
func Diary(entries []agenda.JournalEntry, title string, opts Options) ([]byte, error) {
	d := newDoc(opts)
	d.title(title, opts.GeneratedAt)
	d.line(1, accent)
	d.y -= 10

	for _, e := range entries {
		tags := strings.Join(e.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		head := fmt.Sprintf("%s  •  tags: %s", e.Date, tags)

		text := strings.TrimSpace(e.Text)
		if text == "" {
			text = "(sem texto)"
		}
		blocks := wrapText(text, wrapBudget)

		if d.y < entryMargin {
			d.newPage()
		}
		d.text(leftX, 11, true, heading, head)
		d.y -= 14

		for _, line := range blocks {
			if d.y < lineMargin {
				d.newPage()
			}
			d.text(leftX, 10.5, false, body, line)
			d.y -= 13
		}
		d.y -= 6
		d.line(0.5, separator)
		d.y -= 12
	}

	return d.output()
}
