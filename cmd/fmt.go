package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/tradejournal"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tj fmt [-o <file>]

  Validates and formats the journal. This command reads all trades, writes
  dates as YYYY-MM-DD, removes duplicated tags, sorts them in evaluation order
  (date then id), and writes them back in a canonical JSONL format.
  By default, the journal is formatted in-place. Use -o - to print it instead.

Usage Examples:
# Writes to the default journal file.
$ tj fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file, '-' for stdout. Defaults to the journal itself.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.decodeTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	formatted, err := tradejournal.Format(trades)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not format journal %q:\n%v\n", a.TradesFile, err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "-" {
		if err := tradejournal.EncodeTrades(stdout, formatted); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	target := c.outputFile
	if target == "" {
		target = a.TradesFile
	}
	if err := writeJournal(target, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted journal %q: %v\n", target, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d trades into %q.\n", len(formatted), target)
	return subcommands.ExitSuccess
}

// writeJournal replaces the file at path with trades. The journal is written
// to a temporary file first, so that a failure leaves the original untouched.
func writeJournal(path string, trades []tradejournal.Trade) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tj-fmt-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tradejournal.EncodeTrades(tmp, trades); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
