package renderer

import (
	"bytes"

	"github.com/etnz/tradejournal"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders every view of a report as one document.
func ReportMarkdown(r *tradejournal.Report, code string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Trade Journal Report")

	doc.H2("Overview")
	writeOverall(doc, r.Overall, code)

	doc.H2("Open Positions")
	writeHoldings(doc, r.Holdings, code)

	doc.H2("Positions by Symbol")
	writeSummaries(doc, r.Summaries, code)

	doc.H2("Monthly Realized P&L")
	writeSeries(doc, r.Monthly, code)

	doc.H2("Performance by Tag")
	writeTags(doc, r.Tags, code)
	return doc.String()
}
