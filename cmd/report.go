package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full journal report" }
func (*reportCmd) Usage() string {
	return `tj report

  Displays every view of the journal at once: portfolio totals, open
  positions, positions per symbol, monthly realized P&L and tag performance.
  With -json, the daily series is included too.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.loadTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prices, err := a.loadPrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r := tradejournal.NewReport(trades, prices)
	a.warnUnpriced(r.Holdings)
	return output(func() string { return renderer.ReportMarkdown(r, a.Currency) }, r)
}
