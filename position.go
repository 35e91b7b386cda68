package tradejournal

import (
	"sort"
)

// position is the running average-cost state of one symbol.
type position struct {
	qty  float64 // may go negative when more is sold than held
	cost float64 // total cost of qty
}

// avgCost returns the average unit cost, 0 when nothing is held.
func (p *position) avgCost() float64 {
	if p.qty == 0 {
		return 0
	}
	return p.cost / p.qty
}

// apply folds one trade into the position and returns the realized amount,
// always 0 for a buy.
func (p *position) apply(t Trade) (realized float64) {
	switch t.Side {
	case Buy:
		p.qty += t.Quantity
		p.cost += t.Price * t.Quantity
	case Sell:
		// the average cost is taken before the sell reduces the position.
		avg := p.avgCost()
		realized = (t.Price - avg) * t.Quantity
		p.qty -= t.Quantity
		p.cost -= avg * t.Quantity
	}
	if p.qty == 0 {
		// a flat position carries no residual cost.
		p.cost = 0
	}
	return realized
}

// book holds one position per symbol.
type book map[string]*position

// apply folds a trade into its symbol's position.
func (b book) apply(t Trade) float64 {
	p, ok := b[t.Symbol]
	if !ok {
		p = &position{}
		b[t.Symbol] = p
	}
	return p.apply(t)
}

// walk replays trades in canonical order on a fresh book, calling visit with
// each trade and the amount it realized.
//
// Every aggregation owns its own walk: no position state is shared between
// them.
func walk(trades []Trade, visit func(t Trade, realized float64)) {
	b := make(book)
	for _, t := range Ordered(trades) {
		visit(t, b.apply(t))
	}
}

// Outcome counts sells by the sign of their realized amount.
type Outcome struct {
	TradeCount int // number of sells
	WinCount   int
	LossCount  int
	EvenCount  int
}

// record adds one sell to the counters.
func (o *Outcome) record(realized float64) {
	o.TradeCount++
	switch {
	case realized > 0:
		o.WinCount++
	case realized < 0:
		o.LossCount++
	default:
		o.EvenCount++
	}
}

// add merges other counters into o.
func (o *Outcome) add(other Outcome) {
	o.TradeCount += other.TradeCount
	o.WinCount += other.WinCount
	o.LossCount += other.LossCount
	o.EvenCount += other.EvenCount
}

// WinRate is the share of winning sells, 0 when there is no sell.
func (o Outcome) WinRate() Percent {
	return percentOf(float64(o.WinCount), float64(o.TradeCount))
}

// SymbolSummary is the result of replaying all trades of one symbol.
type SymbolSummary struct {
	Symbol      string
	Trades      int // number of trade records, buys and sells
	BuyQty      float64
	BuyAmount   float64
	SellQty     float64
	SellAmount  float64
	PositionQty float64
	AvgCost     float64 // 0 unless PositionQty > 0
	CostBasis   float64 // 0 unless PositionQty > 0
	RealizedPnL float64
	Outcome
}

// Summaries replays trades and returns one summary per traded symbol, sorted
// by symbol.
func Summaries(trades []Trade) []SymbolSummary {
	b := make(book)
	index := make(map[string]*SymbolSummary)
	for _, t := range Ordered(trades) {
		s, ok := index[t.Symbol]
		if !ok {
			s = &SymbolSummary{Symbol: t.Symbol}
			index[t.Symbol] = s
		}
		s.Trades++
		realized := b.apply(t)
		switch t.Side {
		case Buy:
			s.BuyQty += t.Quantity
			s.BuyAmount += t.Amount()
		case Sell:
			s.SellQty += t.Quantity
			s.SellAmount += t.Amount()
			s.RealizedPnL += realized
			s.record(realized)
		}
	}

	summaries := make([]SymbolSummary, 0, len(index))
	for symbol, s := range index {
		p := b[symbol]
		s.PositionQty = p.qty
		// a closed or short position reports no cost.
		if p.qty > 0 {
			s.CostBasis = p.cost
			s.AvgCost = p.cost / p.qty
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Symbol < summaries[j].Symbol })
	return summaries
}

// Summary returns the summary of a single symbol, and false if it was never
// traded.
func Summary(trades []Trade, symbol string) (SymbolSummary, bool) {
	var selected []Trade
	for _, t := range trades {
		if t.Symbol == symbol {
			selected = append(selected, t)
		}
	}
	if len(selected) == 0 {
		return SymbolSummary{}, false
	}
	return Summaries(selected)[0], true
}

// IsOpen reports whether a long position remains.
func (s SymbolSummary) IsOpen() bool { return s.PositionQty > 0 }
