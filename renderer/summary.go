package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders one row per traded symbol.
func SummaryMarkdown(summaries []tradejournal.SymbolSummary, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Positions by Symbol")
	writeSummaries(doc, summaries, code)
	return doc.String()
}

func writeSummaries(doc *md.Markdown, summaries []tradejournal.SymbolSummary, code string) {
	if len(summaries) == 0 {
		doc.PlainText("No trades recorded.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Trades", "Position", "Avg Cost", "Cost Basis", "Realized P&L", "Win Rate"},
	}
	var realized float64
	for _, s := range summaries {
		realized += s.RealizedPnL
		table.Rows = append(table.Rows, []string{
			s.Symbol,
			strconv.Itoa(s.Trades),
			Quantity(s.PositionQty),
			Money(s.AvgCost, code),
			Money(s.CostBasis, code),
			SignedMoney(s.RealizedPnL, code),
			winRate(s.Outcome),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total realized P&L: %s", md.Bold(SignedMoney(realized, code))))
}

// winRate shows the win rate along with the number of sells it is based on.
func winRate(o tradejournal.Outcome) string {
	if o.TradeCount == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d/%d)", o.WinRate(), o.WinCount, o.TradeCount)
}
