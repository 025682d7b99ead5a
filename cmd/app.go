// Package cmd implements the CLI to keep the journal and the cash book.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/dmesquita/agenda"
	"github.com/dmesquita/agenda/store"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&diaryCmd{}, "journal")
	c.Register(&searchCmd{}, "journal")

	c.Register(&txCmd{}, "cash book")
	c.Register(&rmCmd{}, "cash book")
	c.Register(&listCmd{}, "cash book")
	c.Register(&showCmd{}, "cash book")
	c.Register(&attachCmd{}, "cash book")

	c.Register(&diaryPdfCmd{}, "reports")
	c.Register(&cashPdfCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&configCmd{}, "settings")
}

// as a CLI application the process is short lived, so globals are fine here.

var dbPath = flag.String("db", "", "Path to the database file (default $AGENDA_DB or agenda.db)")

// openStore opens the single store handle for the lifetime of the command.
// The handle is opened once and threaded through; commands must Close it.
func openStore() (*store.Store, error) {
	path := *dbPath
	if path == "" {
		path = os.Getenv("AGENDA_DB")
	}
	if path == "" {
		path = "agenda.db"
	}
	return store.Open(path)
}

// currency returns the reporting currency, overridable via config.
func currency(ctx context.Context, st *store.Store) string {
	if cur, ok, err := st.Config(ctx, "currency"); err == nil && ok {
		return cur
	}
	return "BRL"
}

// dayRange converts an inclusive date pair into a millisecond range
// covering the whole days. An empty bound leaves that side open.
func dayRange(from, to string) (int64, int64, error) {
	start, end := int64(0), int64(math.MaxInt64)
	if from != "" {
		t, err := time.ParseInLocation(agenda.DateLayout, from, time.Local)
		if err != nil {
			return 0, 0, fmt.Errorf("bad -from date %q: %w", from, err)
		}
		start = t.UnixMilli()
	}
	if to != "" {
		t, err := time.ParseInLocation(agenda.DateLayout, to, time.Local)
		if err != nil {
			return 0, 0, fmt.Errorf("bad -to date %q: %w", to, err)
		}
		end = t.Add(24*time.Hour).UnixMilli() - 1
	}
	return start, end, nil
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		out, rerr := r.Render(md)
		if rerr == nil {
			fmt.Print(out)
			return
		}
		err = rerr
	}
	log.Printf("warning: terminal rendering failed, printing raw markdown: %v", err)
	fmt.Print(md)
}
