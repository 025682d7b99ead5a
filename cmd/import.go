package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda/backup"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a JSON snapshot, replacing all records" }
func (*importCmd) Usage() string {
	return `agd import -force <file>

  Replaces the journal, cash book and receipts with the snapshot's
  contents. ALL CURRENT RECORDS ARE DISCARDED, which is why -force is
  required. Settings are kept. The replacement is atomic: a bad
  snapshot leaves the store exactly as it was.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm discarding all current records")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one snapshot file")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: import discards all current records; pass -force to confirm")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	doc, err := backup.Decode(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if err := backup.Import(ctx, st, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d entries, %d transactions, %d attachments.\n",
		len(doc.Diary), len(doc.Cash), len(doc.Attach))
	return subcommands.ExitSuccess
}
