package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda/backup"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export everything to one JSON snapshot" }
func (*exportCmd) Usage() string {
	return `agd export [-o <file>]

  Writes every journal entry, transaction and receipt into a single
  portable JSON document. The store is not modified.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (default backup_agenda_<date>.json)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	doc, err := backup.Export(ctx, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}

	name := c.out
	if name == "" {
		name = fmt.Sprintf("backup_agenda_%s.json", time.Now().Format("2006-01-02"))
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := doc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s (%d entries, %d transactions, %d attachments).\n",
		name, len(doc.Diary), len(doc.Cash), len(doc.Attach))
	return subcommands.ExitSuccess
}
