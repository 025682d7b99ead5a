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

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one transaction with its attachments" }
func (*showCmd) Usage() string {
	return `agd show <transaction-id>

  Shows a single transaction and the receipts attached to it. A unique
  id prefix is enough.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id")
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	t, err := findTransaction(ctx, st, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	atts, err := st.AttachmentsFor(ctx, t.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing attachments: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transactions([]agenda.Transaction{t}, currency(ctx, st)))
	printMarkdown(renderer.Attachments(atts))
	return subcommands.ExitSuccess
}

// findTransaction resolves a full id or a unique prefix of one.
func findTransaction(ctx context.Context, st txLister, id string) (agenda.Transaction, error) {
	txns, err := st.Transactions(ctx)
	if err != nil {
		return agenda.Transaction{}, err
	}
	var matches []agenda.Transaction
	for _, t := range txns {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return agenda.Transaction{}, fmt.Errorf("no transaction %q", id)
	default:
		return agenda.Transaction{}, fmt.Errorf("%q is ambiguous (%d matches)", id, len(matches))
	}
}

type txLister interface {
	Transactions(ctx context.Context) ([]agenda.Transaction, error)
}
