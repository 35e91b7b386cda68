package tradejournal

import "math"

// approx reports whether a and b are equal up to float rounding.
func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// summaryOf returns the summary of symbol, or a zero summary.
func summaryOf(summaries []SymbolSummary, symbol string) SymbolSummary {
	for _, s := range summaries {
		if s.Symbol == symbol {
			return s
		}
	}
	return SymbolSummary{}
}

// sampleJournal is a small journal spanning two months, two symbols and a few tags.
func sampleJournal() []Trade {
	return []Trade{
		NewBuy("t01", "2025-10-01", "AAA", 10, 100, "swing"),
		NewBuy("t02", "2025-10-03", "AAA", 10, 200, "swing"),
		NewSell("t03", "2025-10-10", "AAA", 10, 180, "swing", "breakout"),
		NewBuy("t04", "2025-10-10", "BBB", 5, 50),
		NewSell("t05", "2025-10-20", "BBB", 2, 40, "breakout"),
		NewSell("t06", "2025-11-02", "BBB", 3, 50, "breakout", "breakout"),
		NewBuy("t07", "2025-11-05", "CCC", 4, 25),
		NewSell("t08", "2025-11-05", "AAA", 5, 150),
	}
}
