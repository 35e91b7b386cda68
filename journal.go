package tradejournal

// Entry is a trade as replayed in the journal, along with its effect on the
// position of its symbol.
type Entry struct {
	Trade
	Realized    float64 // 0 for a buy
	PositionQty float64 // after the trade
	AvgCost     float64 // after the trade, 0 unless the position is long
}

// Journal replays trades in canonical order and returns one entry per trade.
func Journal(trades []Trade) []Entry {
	b := make(book)
	entries := make([]Entry, 0, len(trades))
	for _, t := range Ordered(trades) {
		e := Entry{Trade: t, Realized: b.apply(t)}
		p := b[t.Symbol]
		e.PositionQty = p.qty
		if p.qty > 0 {
			e.AvgCost = p.avgCost()
		}
		entries = append(entries, e)
	}
	return entries
}
