package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradejournal"
	"github.com/google/subcommands"
)

type validateCmd struct {
	strict bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the journal for invalid trades" }
func (*validateCmd) Usage() string {
	return `tj validate [-strict]

  Checks every trade of the journal: unique non empty id, symbol, YYYY-MM-DD
  date, known side, price zero or more and quantity more than zero. All the
  problems found are reported.

  With -strict, sells of more shares than held at that point of the journal
  are rejected too.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "Reject selling more than held. Defaults to the configured strict mode.")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.decodeTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	opts := tradejournal.ValidationOptions{ForbidOverselling: c.strict || a.Strict}
	if err := tradejournal.ValidateTrades(trades, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Journal %q is invalid:\n%v\n", a.TradesFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ %d trades in %q are valid.\n", len(trades), a.TradesFile)
	return subcommands.ExitSuccess
}
