package renderer

import (
	"bytes"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the open positions valued at current prices and the
// portfolio totals.
func HoldingMarkdown(holdings []tradejournal.Holding, overall tradejournal.OverallStats, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Open Positions")
	writeHoldings(doc, holdings, code)
	doc.H2("Totals")
	writeOverall(doc, overall, code)
	return doc.String()
}

func writeHoldings(doc *md.Markdown, holdings []tradejournal.Holding, code string) {
	if len(holdings) == 0 {
		doc.PlainText("No open position.")
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
		Header: []string{"Symbol", "Position", "Avg Cost", "Price", "Market Value", "Unrealized P&L", "Return"},
	}
	for _, h := range holdings {
		price, value, gain, rate := "n/a", "n/a", "n/a", "n/a"
		if h.Priced {
			price = Money(h.Price, code)
			value = Money(h.MarketValue, code)
			gain = SignedMoney(h.UnrealizedPnL, code)
			rate = h.ReturnRate.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			Quantity(h.PositionQty),
			Money(h.AvgCost, code),
			price,
			value,
			gain,
			rate,
		})
	}
	doc.Table(table)
}

func writeOverall(doc *md.Markdown, o tradejournal.OverallStats, code string) {
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Overall", "Amount"},
		Rows: [][]string{
			{"Total Bought", Money(o.TotalBuyAmount, code)},
			{"Total Sold", Money(o.TotalSellAmount, code)},
			{"Realized P&L", SignedMoney(o.RealizedPnL, code)},
			{"Open Cost Basis", Money(o.OpenCostBasis, code)},
			{"Open Market Value", Money(o.OpenMarketValue, code)},
			{"Unrealized P&L", SignedMoney(o.UnrealizedPnL, code)},
			{md.Bold("Total P&L"), md.Bold(SignedMoney(o.TotalPnL, code))},
			{"Holding Return", o.HoldingReturnRate.SignedString()},
			{"Win Rate", winRate(o.Outcome)},
		},
	})
}
