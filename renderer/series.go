package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders a realized P&L series, one row per bucket.
func SeriesMarkdown(points []tradejournal.PnLPoint, bucket tradejournal.Bucket, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	switch bucket {
	case tradejournal.Monthly:
		doc.H1("Monthly Realized P&L")
	default:
		doc.H1("Daily Realized P&L")
	}
	writeSeries(doc, points, code)
	return doc.String()
}

func writeSeries(doc *md.Markdown, points []tradejournal.PnLPoint, code string) {
	if len(points) == 0 {
		doc.PlainText("No realized P&L in this period.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Period", "Realized P&L"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Label, SignedMoney(p.Value, code)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(SignedMoney(tradejournal.TotalPnL(points), code))})
	doc.Table(table)
	if best, worst, ok := extremes(points); ok && best.Key != worst.Key {
		doc.PlainText(fmt.Sprintf("Best: %s (%s), worst: %s (%s).",
			best.Label, SignedMoney(best.Value, code), worst.Label, SignedMoney(worst.Value, code)))
	}
}

// extremes returns the points with the highest and the lowest value.
func extremes(points []tradejournal.PnLPoint) (best, worst tradejournal.PnLPoint, ok bool) {
	for i, p := range points {
		if i == 0 || p.Value > best.Value {
			best = p
		}
		if i == 0 || p.Value < worst.Value {
			worst = p
		}
	}
	return best, worst, len(points) > 0
}
