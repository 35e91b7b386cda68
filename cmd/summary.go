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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	symbol string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display positions and realized P&L per symbol" }
func (*summaryCmd) Usage() string {
	return `tj summary [-symbol <symbol>]

  Replays the journal and displays, for each traded symbol, the quantities
  bought and sold, the open position at its average cost, the realized P&L
  and the win rate of the sells.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only display this symbol.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.loadTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summaries := tradejournal.Summaries(trades)
	if c.symbol != "" {
		s, ok := tradejournal.Summary(trades, c.symbol)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: symbol %q is not in the journal\n", c.symbol)
			return subcommands.ExitFailure
		}
		summaries = []tradejournal.SymbolSummary{s}
	}
	return output(func() string { return renderer.SummaryMarkdown(summaries, a.Currency) }, summaries)
}
