package tradejournal

import (
	"fmt"
	"slices"
	"strings"
)

// Side is the direction of a trade.
type Side int

const (
	// Buy adds to a position.
	Buy Side = iota
	// Sell reduces a position and realizes a gain or a loss against the average cost.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseSide parses a side, case insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// Tags is a set of free-text labels attached to a trade.
//
// Order does not matter and duplicates are ignored: use Set to get the
// distinct labels.
type Tags []string

// Set returns the distinct, non-empty labels in first-seen order.
func (t Tags) Set() []string {
	set := make([]string, 0, len(t))
	for _, tag := range t {
		if tag == "" || slices.Contains(set, tag) {
			continue
		}
		set = append(set, tag)
	}
	return set
}

// ParseTags splits a comma-separated list of labels.
func ParseTags(s string) Tags {
	var tags Tags
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Trade is a single buy or sell execution recorded in the journal.
//
// Trades are values: nothing in this package modifies a Trade it receives.
type Trade struct {
	ID       string
	Date     string // YYYY-MM-DD
	Symbol   string
	Side     Side
	Price    float64
	Quantity float64
	Tags     Tags
	Memo     string
}

// NewBuy creates a buy trade.
func NewBuy(id, on, symbol string, quantity, price float64, tags ...string) Trade {
	return Trade{ID: id, Date: on, Symbol: symbol, Side: Buy, Price: price, Quantity: quantity, Tags: tags}
}

// NewSell creates a sell trade.
func NewSell(id, on, symbol string, quantity, price float64, tags ...string) Trade {
	return Trade{ID: id, Date: on, Symbol: symbol, Side: Sell, Price: price, Quantity: quantity, Tags: tags}
}

// Amount is the cash value of the trade (price * quantity).
func (t Trade) Amount() float64 { return t.Price * t.Quantity }

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s %v@%v", t.Date, t.Side, t.Symbol, t.Quantity, t.Price)
}
