package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	from string
	to   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list cash-book transactions, most recent first" }
func (*listCmd) Usage() string {
	return `agd list [-from <date> -to <date>]

  Lists transactions newest first. With -from and -to, only the
  transactions inside the inclusive date range.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD, inclusive)")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	var txns []agenda.Transaction
	if c.from != "" || c.to != "" {
		startMs, endMs, err := dayRange(c.from, c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		txns, err = st.TransactionsInRange(ctx, startMs, endMs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing transactions: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		txns, err = st.Transactions(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing transactions: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Transactions(txns, currency(ctx, st)))
	return subcommands.ExitSuccess
}
