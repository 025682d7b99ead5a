package report

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapTextKeepsWordsAndBudget(t *testing.T) {
	words := strings.Fields(strings.Repeat("uma palavra comum e outra ligeiramente maior ", 8))
	text := strings.Join(words, " ") // ~350 characters

	lines := wrapText(text, wrapBudget)
	if len(lines) < 2 {
		t.Fatalf("wrapText() produced %d lines, want several", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n > wrapBudget {
			t.Errorf("line %d is %d runes, over the %d budget: %q", i, n, wrapBudget, line)
		}
	}
	if got := strings.Join(lines, " "); got != text {
		t.Fatalf("wrapping lost or reordered words:\ngot  %q\nwant %q", got, text)
	}
}

func TestWrapTextLongWord(t *testing.T) {
	long := strings.Repeat("x", 120)
	lines := wrapText("antes "+long+" depois", wrapBudget)
	want := []string{"antes", long, "depois"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("wrapText()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if lines := wrapText("   ", wrapBudget); len(lines) != 0 {
		t.Fatalf("wrapText(blank) = %q, want none", lines)
	}
}

func TestFitText(t *testing.T) {
	tests := []struct {
		in    string
		width float64
		want  string
	}{
		{"curto", 90, "curto"},
		{"", 90, ""},
		// 90pt wide column keeps 9 runes of a long value, plus the mark.
		{"uma descrição realmente comprida", 90, "uma descr…"},
		// Narrow columns still keep at least 10 characters.
		{"abcdefghijklmnop", 10, "abcdefghi…"},
	}
	for _, tt := range tests {
		if got := fitText(tt.in, tt.width); got != tt.want {
			t.Errorf("fitText(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
