package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search journal entries by word or tag" }
func (*searchCmd) Usage() string {
	return `agd search [query...]

  Lists the journal entries whose text or tags contain the query, ignoring
  case. Without a query, lists every entry. The match is a plain substring
  scan over all entries.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	entries, err := st.SearchEntries(ctx, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching entries: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Entries(entries))
	return subcommands.ExitSuccess
}
