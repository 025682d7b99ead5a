package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions and their attachments" }
func (*rmCmd) Usage() string {
	return `agd rm <transaction-id>...

  Deletes the given transactions. Their attachments are deleted first, so
  no orphaned receipt is left behind.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transaction id given")
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	for _, id := range f.Args() {
		atts, err := st.AttachmentsFor(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing attachments of %s: %v\n", id, err)
			return subcommands.ExitFailure
		}
		for _, a := range atts {
			if err := st.DeleteAttachment(ctx, a.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Error deleting attachment %s: %v\n", a.ID, err)
				return subcommands.ExitFailure
			}
		}
		if err := st.DeleteTransaction(ctx, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting transaction %s: %v\n", id, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted %s (%d attachments).\n", id, len(atts))
	}
	return subcommands.ExitSuccess
}
