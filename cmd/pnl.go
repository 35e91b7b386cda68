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

type pnlCmd struct {
	bucket string
	start  string
	end    string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display realized P&L by day or by month" }
func (*pnlCmd) Usage() string {
	return `tj pnl [-bucket daily|monthly] [-s <start_date>] [-d <end_date>]

  Sums the P&L realized by sells per day, or per month. Only buckets having
  at least one sell are listed. A month is kept when any of its days is in
  the date range.

  See 'tj topic dates' for the supported date formats.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bucket, "bucket", "daily", "Bucket size: daily or monthly.")
	f.StringVar(&c.start, "s", "", "Start date of the range, open if empty.")
	f.StringVar(&c.end, "d", "", "End date of the range, open if empty.")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bucket, err := tradejournal.ParseBucket(c.bucket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, err := parseRange(c.start, c.end)
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

	points := tradejournal.Series(trades, bucket)
	if r != (date.Range{}) {
		points = tradejournal.FilterPoints(points, r)
	}
	return output(func() string { return renderer.SeriesMarkdown(points, bucket, a.Currency) }, points)
}

// parseRange parses the optional bounds of a date range.
func parseRange(start, end string) (date.Range, error) {
	var r date.Range
	var err error
	if start != "" {
		if r.From, err = date.Parse(start); err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		if r.To, err = date.Parse(end); err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, fmt.Errorf("invalid date range: %s is before %s", r.To, r.From)
	}
	return r, nil
}
