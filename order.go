package tradejournal

import "sort"

// Ordered returns a copy of trades in evaluation order: by date, then by id.
//
// Every computation in this package walks trades in this order. Two trades
// on the same day are told apart by their id only, so a same-day buy and
// sell of one symbol always resolve the same way regardless of how the
// journal was written.
func Ordered(trades []Trade) []Trade {
	ordered := make([]Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return before(ordered[i], ordered[j])
	})
	return ordered
}

// before reports whether a must be processed before b.
func before(a, b Trade) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.ID < b.ID
}
