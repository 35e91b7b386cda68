package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// TagsMarkdown renders the performance of each tag, in the given order.
func TagsMarkdown(perfs []tradejournal.TagPerf, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Performance by Tag")
	writeTags(doc, perfs, code)
	return doc.String()
}

func writeTags(doc *md.Markdown, perfs []tradejournal.TagPerf, code string) {
	if len(perfs) == 0 {
		doc.PlainText("No tagged sells.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Tag", "Sells", "Win Rate", "Realized P&L", "Avg per Sell"},
	}
	for _, p := range perfs {
		table.Rows = append(table.Rows, []string{
			p.Tag,
			strconv.Itoa(p.TradeCount),
			p.WinRate().String(),
			SignedMoney(p.RealizedPnL, code),
			SignedMoney(p.AvgPnLPerTrade, code),
		})
	}
	doc.Table(table)
	// amounts are attributed to every tag of a sell
	doc.PlainText("A sell with several tags counts fully under each of them.")
}
