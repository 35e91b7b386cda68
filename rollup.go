package tradejournal

// Prices maps a symbol to its current price. Not every symbol needs one: a
// missing key means the price is unknown.
type Prices map[string]float64

// Lookup returns the price of symbol and whether it is known.
func (p Prices) Lookup(symbol string) (float64, bool) {
	price, ok := p[symbol]
	return price, ok
}

// Holding is the valuation of one open position at the current price.
type Holding struct {
	Symbol        string
	PositionQty   float64
	AvgCost       float64
	CostBasis     float64 // PositionQty * AvgCost
	Price         float64
	Priced        bool // false when no current price was supplied
	MarketValue   float64
	UnrealizedPnL float64
	ReturnRate    Percent // UnrealizedPnL / CostBasis, 0 when CostBasis is 0
}

// Holdings values every open long position. Positions without a price are
// listed with Priced set to false and no market value.
func Holdings(summaries []SymbolSummary, prices Prices) []Holding {
	var holdings []Holding
	for _, s := range summaries {
		if !s.IsOpen() {
			continue
		}
		h := Holding{
			Symbol:      s.Symbol,
			PositionQty: s.PositionQty,
			AvgCost:     s.AvgCost,
			CostBasis:   s.PositionQty * s.AvgCost,
		}
		if price, ok := prices.Lookup(s.Symbol); ok {
			h.Price = price
			h.Priced = true
			h.MarketValue = s.PositionQty * price
			h.UnrealizedPnL = (price - s.AvgCost) * s.PositionQty
			h.ReturnRate = percentOf(h.UnrealizedPnL, h.CostBasis)
		}
		holdings = append(holdings, h)
	}
	return holdings
}

// OverallStats are the portfolio-wide totals.
type OverallStats struct {
	TotalBuyAmount  float64
	TotalSellAmount float64
	RealizedPnL     float64
	OpenCostBasis   float64 // priced open positions only
	OpenMarketValue float64 // priced open positions only
	UnrealizedPnL   float64 // OpenMarketValue - OpenCostBasis
	TotalPnL        float64 // RealizedPnL + UnrealizedPnL
	// HoldingReturnRate is UnrealizedPnL / OpenCostBasis, 0 when nothing priced is held.
	HoldingReturnRate Percent
	Outcome
}

// Overall rolls symbol summaries and current prices up into portfolio totals.
//
// Realized P&L counts for every symbol, open cost and market value only for
// long positions with a known price.
func Overall(summaries []SymbolSummary, prices Prices) OverallStats {
	var o OverallStats
	for _, s := range summaries {
		o.TotalBuyAmount += s.BuyAmount
		o.TotalSellAmount += s.SellAmount
		o.RealizedPnL += s.RealizedPnL
		o.Outcome.add(s.Outcome)

		price, ok := prices.Lookup(s.Symbol)
		if !ok || !s.IsOpen() {
			continue
		}
		o.OpenCostBasis += s.PositionQty * s.AvgCost
		o.OpenMarketValue += s.PositionQty * price
	}
	o.UnrealizedPnL = o.OpenMarketValue - o.OpenCostBasis
	o.TotalPnL = o.RealizedPnL + o.UnrealizedPnL
	o.HoldingReturnRate = percentOf(o.UnrealizedPnL, o.OpenCostBasis)
	return o
}
