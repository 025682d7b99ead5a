package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/renderer"
)

// diaryCmd holds the flags for the 'diary' subcommand.
type diaryCmd struct {
	date string
	tags string
}

func (*diaryCmd) Name() string     { return "diary" }
func (*diaryCmd) Synopsis() string { return "write or show a journal entry" }
func (*diaryCmd) Usage() string {
	return `agd diary [-d <date>] [-tags a,b] [text...]

  With text, inserts or replaces the journal entry for the date (today by
  default). There is at most one entry per date: writing again overwrites.
  Without text, shows the stored entry.

Usage Examples:
# Write today's entry.
$ agd diary -tags family,health "long day at the clinic"

# Show a past entry.
$ agd diary -d 2026-01-02
`
}

func (c *diaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", agenda.Today(), "Date of the entry (YYYY-MM-DD)")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags")
}

func (c *diaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if f.NArg() == 0 {
		entry, ok, err := st.Entry(ctx, c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading entry: %v\n", err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Printf("No entry for %s.\n", c.date)
			return subcommands.ExitSuccess
		}
		printMarkdown(renderer.Entries([]agenda.JournalEntry{entry}))
		return subcommands.ExitSuccess
	}

	entry := agenda.JournalEntry{
		Date: c.date,
		Text: strings.Join(f.Args(), " "),
		Tags: splitTags(c.tags),
	}
	if err := st.UpsertEntry(ctx, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved entry for %s.\n", c.date)
	return subcommands.ExitSuccess
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
