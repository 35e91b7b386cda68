package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// LogMarkdown renders the chronological log of trades with the realized P&L
// of each sell and the position left after each trade.
func LogMarkdown(entries []tradejournal.Entry, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Trade Log")
	if len(entries) == 0 {
		doc.PlainText("No trades in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Side", "Symbol", "Quantity", "Price", "Realized", "Position", "Tags"},
	}
	for _, e := range entries {
		realized := ""
		if e.Side == tradejournal.Sell {
			realized = SignedMoney(e.Realized, code)
		}
		position := Quantity(e.PositionQty)
		if e.PositionQty > 0 {
			position += " @ " + Money(e.AvgCost, code)
		}
		table.Rows = append(table.Rows, []string{
			e.Date,
			e.Side.String(),
			e.Symbol,
			Quantity(e.Quantity),
			Money(e.Price, code),
			realized,
			position,
			strings.Join(e.Tags.Set(), ", "),
		})
	}
	doc.Table(table)
	return doc.String()
}
