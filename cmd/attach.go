package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/img"
)

// attachCmd holds the flags for the 'attach' subcommand.
type attachCmd struct {
	tx string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "attach receipt photos to a transaction" }
func (*attachCmd) Usage() string {
	return `agd attach -tx <transaction-id> <photo.jpg>...

  Compresses each photo and stores it as a receipt of the transaction,
  together with a small thumbnail. JPEG and PNG input is accepted; the
  stored payload is always JPEG. A photo that cannot be read or decoded
  is skipped, the others are still stored.
`
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tx, "tx", "", "Transaction the receipts belong to (required)")
}

func (c *attachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tx == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: need -tx and at least one photo file")
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	t, err := findTransaction(ctx, st, c.tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", name, err)
			status = subcommands.ExitFailure
			continue
		}
		full, err := img.Compress(data, img.FullWidth, img.FullQuality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", name, err)
			status = subcommands.ExitFailure
			continue
		}
		// The thumbnail is best effort, a receipt without one is fine.
		thumb, err := img.Compress(data, img.ThumbWidth, img.ThumbQuality)
		if err != nil {
			thumb = nil
		}

		a := agenda.NewAttachment(t.ID, "image/jpeg", full, thumb, time.Now().UnixMilli())
		if err := st.AddAttachment(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Attached %s to %s (%d bytes).\n", name, t.ID, len(full))
	}
	return status
}
