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

type tagsCmd struct {
	sort string
}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "display the performance of each tag" }
func (*tagsCmd) Usage() string {
	return `tj tags [-sort count|pnl|winrate|name]

  Displays, for each tag found on a sell, the number of sells, the win rate,
  the realized P&L and the average P&L per sell. A sell with several tags
  counts fully under each of them.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort order: count, pnl, winrate or name. Defaults to the configured tag order.")
}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	sort := c.sort
	if sort == "" {
		sort = a.TagOrder
	}
	order, err := tradejournal.ParseTagOrder(sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	trades, err := a.loadTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	perfs := tradejournal.TagStats(trades)
	tradejournal.SortTags(perfs, order)
	return output(func() string { return renderer.TagsMarkdown(perfs, a.Currency) }, perfs)
}
