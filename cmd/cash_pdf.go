package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/report"
)

// cashPdfCmd holds the flags for the 'cash-pdf' subcommand.
type cashPdfCmd struct {
	out  string
	from string
	to   string
}

func (*cashPdfCmd) Name() string     { return "cash-pdf" }
func (*cashPdfCmd) Synopsis() string { return "write the cash book as a PDF report" }
func (*cashPdfCmd) Usage() string {
	return `agd cash-pdf [-o <file>] [-from <date> -to <date>]

  Renders the cash book into a paginated A4 PDF with a totals summary.
  The totals cover exactly the selected transactions. With -from and
  -to only the transactions inside the inclusive date range.
`
}

func (c *cashPdfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "caixa.pdf", "Output file")
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD, inclusive)")
}

func (c *cashPdfCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
			fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		txns, err = st.Transactions(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	pdf, err := report.Cash(txns, "Livro Caixa", report.Options{
		GeneratedAt: time.Now(),
		Currency:    currency(ctx, st),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.out, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s (%d transactions).\n", c.out, len(txns))
	return subcommands.ExitSuccess
}
