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

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display open positions valued at current prices" }
func (*holdingCmd) Usage() string {
	return `tj [-prices-file <file>] holding

  Displays the open positions with their average cost, market value and
  unrealized P&L at the current prices, followed by the portfolio totals.
  Positions without a current price are listed but not valued.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summaries := tradejournal.Summaries(trades)
	holdings := tradejournal.Holdings(summaries, prices)
	overall := tradejournal.Overall(summaries, prices)
	a.warnUnpriced(holdings)

	v := struct {
		Holdings []tradejournal.Holding    `json:"holdings"`
		Overall  tradejournal.OverallStats `json:"overall"`
	}{holdings, overall}
	if v.Holdings == nil {
		v.Holdings = []tradejournal.Holding{}
	}
	return output(func() string { return renderer.HoldingMarkdown(holdings, overall, a.Currency) }, v)
}
