package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/date"
	"github.com/etnz/tradejournal/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	start  string
	end    string
	symbol string
}

func (*logCmd) Name() string { return "log" }
func (*logCmd) Synopsis() string {
	return "display a chronological log of trades and their impact on positions"
}
func (*logCmd) Usage() string {
	return `tj log [-s <start_date>] [-d <end_date>] [-symbol <symbol>]

  Lists trades in evaluation order with the P&L realized by each sell and the
  position left after each trade. The whole journal is replayed, the range
  only selects the lines to display.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "Start date of the log, open if empty.")
	f.StringVar(&p.end, "d", "", "End date of the log, open if empty.")
	f.StringVar(&p.symbol, "symbol", "", "Only list trades of this symbol.")
}

func (p *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(p.start, p.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.loadTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entries := filterEntries(tradejournal.Journal(trades), r, p.symbol)
	if entries == nil {
		entries = []tradejournal.Entry{}
	}
	return output(func() string { return renderer.LogMarkdown(entries, a.Currency) }, entries)
}

// filterEntries keeps the entries of symbol, if not empty, within r.
func filterEntries(entries []tradejournal.Entry, r date.Range, symbol string) []tradejournal.Entry {
	var kept []tradejournal.Entry
	for _, e := range entries {
		if symbol != "" && e.Symbol != symbol {
			continue
		}
		// dates were validated when loading the journal
		on, err := date.ParseISO(e.Date)
		if err != nil || !r.Contains(on) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
