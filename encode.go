package tradejournal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// tradeCmd is the journal line of a trade as found on disk.
type tradeCmd struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Symbol   string          `json:"symbol"`
	Side     string          `json:"side"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Tags     json.RawMessage `json:"tags"`
	Memo     string          `json:"memo"`
}

// decodeTags accepts either an array of labels or a single comma-separated
// string, both forms exist in older journals.
func decodeTags(raw json.RawMessage) (Tags, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return ParseTags(s), nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("tags must be a string or an array of strings: %w", err)
	}
	var tags Tags
	for _, tag := range list {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (t *Trade) UnmarshalJSON(data []byte) error {
	var cmd tradeCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return err
	}
	side, err := ParseSide(cmd.Side)
	if err != nil {
		return err
	}
	tags, err := decodeTags(cmd.Tags)
	if err != nil {
		return err
	}
	*t = Trade{
		ID:       cmd.ID,
		Date:     strings.TrimSpace(cmd.Date),
		Symbol:   cmd.Symbol,
		Side:     side,
		Price:    cmd.Price.InexactFloat64(),
		Quantity: cmd.Quantity.InexactFloat64(),
		Tags:     tags,
		Memo:     cmd.Memo,
	}
	return nil
}

func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Append("side", t.Side.String())
	w.Number("price", t.Price)
	w.Number("quantity", t.Quantity)
	if tags := t.Tags.Set(); len(tags) > 0 {
		w.Append("tags", tags)
	}
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// maxLineSize bounds a journal line, long memos included.
const maxLineSize = 1 << 20

// DecodeTrades reads a JSONL journal, one trade per line. Blank lines are
// skipped. Trades are returned in file order, and are not validated.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}
		var t Trade
		if err := json.Unmarshal(lineBytes, &t); err != nil {
			return nil, fmt.Errorf("line %d: could not decode trade %q: %w", line, string(lineBytes), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	return trades, nil
}

// EncodeTrades writes trades as a JSONL journal, in evaluation order.
func EncodeTrades(w io.Writer, trades []Trade) error {
	for _, t := range Ordered(trades) {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTrade writes a single trade as one journal line.
func EncodeTrade(w io.Writer, t Trade) error {
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("could not encode trade %q: %w", t.ID, err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func (s Side) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	side, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

func (p Percent) MarshalJSON() ([]byte, error) { return json.Marshal(number(float64(p))) }

func (o Outcome) appendTo(w *jsonObjectWriter) {
	w.Append("tradeCount", o.TradeCount)
	w.Append("winCount", o.WinCount)
	w.Append("lossCount", o.LossCount)
	w.Append("evenCount", o.EvenCount)
	w.Append("winRate", o.WinRate())
}

func (s SymbolSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.Symbol)
	w.Append("trades", s.Trades)
	w.Number("buyQty", s.BuyQty)
	w.Number("buyAmount", s.BuyAmount)
	w.Number("sellQty", s.SellQty)
	w.Number("sellAmount", s.SellAmount)
	w.Number("positionQty", s.PositionQty)
	w.Number("avgCost", s.AvgCost)
	w.Number("costBasis", s.CostBasis)
	w.Number("realizedPnL", s.RealizedPnL)
	s.Outcome.appendTo(&w)
	return w.MarshalJSON()
}

func (p PnLPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", p.Key)
	w.Append("label", p.Label)
	w.Number("value", p.Value)
	return w.MarshalJSON()
}

func (p TagPerf) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tag", p.Tag)
	w.Number("realizedPnL", p.RealizedPnL)
	w.Number("avgPnLPerTrade", p.AvgPnLPerTrade)
	p.Outcome.appendTo(&w)
	return w.MarshalJSON()
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.Symbol)
	w.Number("positionQty", h.PositionQty)
	w.Number("avgCost", h.AvgCost)
	w.Number("costBasis", h.CostBasis)
	if h.Priced {
		w.Number("price", h.Price)
		w.Number("marketValue", h.MarketValue)
		w.Number("unrealizedPnL", h.UnrealizedPnL)
		w.Append("returnRate", h.ReturnRate)
	}
	return w.MarshalJSON()
}

func (o OverallStats) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("totalBuyAmount", o.TotalBuyAmount)
	w.Number("totalSellAmount", o.TotalSellAmount)
	w.Number("realizedPnL", o.RealizedPnL)
	w.Number("openCostBasis", o.OpenCostBasis)
	w.Number("openMarketValue", o.OpenMarketValue)
	w.Number("unrealizedPnL", o.UnrealizedPnL)
	w.Number("totalPnL", o.TotalPnL)
	w.Append("holdingReturnRate", o.HoldingReturnRate)
	o.Outcome.appendTo(&w)
	return w.MarshalJSON()
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("summaries", nonNil(r.Summaries))
	w.Append("holdings", nonNil(r.Holdings))
	w.Append("daily", nonNil(r.Daily))
	w.Append("monthly", nonNil(r.Monthly))
	w.Append("tags", nonNil(r.Tags))
	w.Append("overall", r.Overall)
	return w.MarshalJSON()
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("trade", e.Trade)
	w.Number("realized", e.Realized)
	w.Number("positionQty", e.PositionQty)
	w.Number("avgCost", e.AvgCost)
	return w.MarshalJSON()
}
