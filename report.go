package tradejournal

import (
	"maps"
	"slices"
	"sync"
)

// Report gathers every view derived from one journal and one set of prices.
type Report struct {
	Summaries []SymbolSummary
	Holdings  []Holding
	Daily     []PnLPoint
	Monthly   []PnLPoint
	Tags      []TagPerf
	Overall   OverallStats
}

// NewReport computes all the views of trades at prices.
//
// Views are independent replays of the same trades, they run concurrently
// and each one gets its own copy of the inputs.
func NewReport(trades []Trade, prices Prices) *Report {
	r := new(Report)
	var wg sync.WaitGroup
	run := func(f func(trades []Trade, prices Prices)) {
		trades, prices := slices.Clone(trades), maps.Clone(prices)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(trades, prices)
		}()
	}

	run(func(trades []Trade, prices Prices) {
		r.Summaries = Summaries(trades)
		r.Holdings = Holdings(r.Summaries, prices)
		r.Overall = Overall(r.Summaries, prices)
	})
	run(func(trades []Trade, _ Prices) {
		r.Daily = DailyPnL(trades)
		r.Monthly = MonthlyPnL(r.Daily)
	})
	run(func(trades []Trade, _ Prices) {
		r.Tags = TagStats(trades)
	})
	wg.Wait()
	return r
}
