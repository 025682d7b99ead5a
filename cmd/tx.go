package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	typ      string
	amount   string
	category string
	method   string
	when     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a cash-book transaction" }
func (*txCmd) Usage() string {
	return `agd tx -a <amount> [-type in|out] [-c <category>] [-m <method>] [-d <datetime>] [description...]

  Records one cash movement. The amount is in the reporting currency and
  accepts "120,50", "120.50" or "120".

Usage Examples:
# An expense, now.
$ agd tx -a 120,50 -c Mercado -m Pix compras da semana

# An income with an explicit timestamp.
$ agd tx -type in -a 900 -c Clínica -d "2026-01-02 15:30" consulta
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "out", "Direction of the movement: in or out")
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 120,50 (required)")
	f.StringVar(&c.category, "c", "Outros", "Category label")
	f.StringVar(&c.method, "m", "Pix", "Payment method label")
	f.StringVar(&c.when, "d", "", "Timestamp, \"2006-01-02 15:04\" or a date (defaults to now)")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := agenda.ParseDirection(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	when, err := parseWhen(c.when, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timestamp: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	cents, err := agenda.ParseAmount(c.amount, currency(ctx, st))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := agenda.NewTransaction(when.UnixMilli(), dir, cents, c.category, c.method, strings.Join(f.Args(), " "))
	if err := st.AddTransaction(ctx, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved transaction %s.\n", t.ID)
	return subcommands.ExitSuccess
}

// parseWhen accepts "2006-01-02 15:04" or a bare date; empty means now.
func parseWhen(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04", agenda.DateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
