package report

import (
	"strings"
	"unicode/utf8"
)

// wrapText breaks text into lines of at most maxChars characters. Wrapping
// is whitespace-based: words are concatenated onto the current line while
// it fits the budget, otherwise the line is flushed and the word starts a
// new one. A single word longer than the budget gets a line of its own.
func wrapText(text string, maxChars int) []string {
	var lines []string
	var line string
	for _, w := range strings.Fields(text) {
		test := w
		if line != "" {
			test = line + " " + w
		}
		if utf8.RuneCountInString(test) > maxChars {
			if line != "" {
				lines = append(lines, line)
			}
			line = w
		} else {
			line = test
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fitText truncates a table cell to its column's character budget, marking
// the cut with an ellipsis. The budget derives from the column width and
// approxCharPx: an approximation, not glyph measurement. An implementation
// with real font metrics could measure instead, at the cost of
// byte-for-byte reproducibility with existing documents.
func fitText(s string, width float64) string {
	max := int(width / (approxCharPx / 4))
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
