package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "KRW"

// currency returns the go-money currency for code. It is never nil, unknown
// codes come back with an empty template.
func currency(code string) money.Currency {
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// finite reports whether v can be handed over to decimal.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Money formats an amount in the currency's minor unit precision, "n/a" for
// values that are not numbers.
func Money(v float64, code string) string {
	if !finite(v) {
		return "n/a"
	}
	cur := currency(code)
	if cur.Template == "" {
		// not a currency go-money knows about
		return decimal.NewFromFloat(v).Round(2).String() + " " + cur.Code
	}
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedMoney is like Money but always shows the sign, and "-" for zero.
func SignedMoney(v float64, code string) string {
	if !finite(v) {
		return "n/a"
	}
	s := Money(v, code)
	switch {
	case s == Money(0, code):
		return "-"
	case v > 0:
		return "+" + s
	default:
		return s
	}
}

// Quantity formats a share count without trailing zeros.
func Quantity(v float64) string {
	if !finite(v) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).String()
}
