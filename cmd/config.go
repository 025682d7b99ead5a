package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "get or set a setting" }
func (*configCmd) Usage() string {
	return `agd config <key> [value]

  With one argument, prints the setting. With two, stores it. Settings
  survive a snapshot import.

Usage Examples:
# The currency used for amounts everywhere.
$ agd config currency BRL
`
}

func (*configCmd) SetFlags(f *flag.FlagSet) {}

func (c *configCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a key and optionally a value")
		return subcommands.ExitUsageError
	}

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	key := f.Arg(0)
	if f.NArg() == 1 {
		val, ok, err := st.Config(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading setting: %v\n", err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Printf("%s is not set.\n", key)
			return subcommands.ExitSuccess
		}
		fmt.Println(val)
		return subcommands.ExitSuccess
	}

	if err := st.SetConfig(ctx, key, f.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error storing setting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s.\n", key)
	return subcommands.ExitSuccess
}
