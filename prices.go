package tradejournal

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DecodePrices reads current prices from a JSON quotes document.
//
// Without path the document must be an object mapping symbols to prices. With
// a JSONPath expression (like "$.quotes") the selected value is read instead,
// it can be such an object or an array of {"symbol": ..., "price": ...}
// objects. Prices may be numbers or numeric strings.
func DecodePrices(r io.Reader, path string) (Prices, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode quotes document: %w", err)
	}
	if path != "" {
		val, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("could not select %q in quotes document: %w", path, err)
		}
		doc = val
	}

	prices := make(Prices)
	switch v := doc.(type) {
	case map[string]any:
		for symbol, raw := range v {
			price, err := priceValue(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid price for %q: %w", symbol, err)
			}
			prices[symbol] = price
		}
	case []any:
		for i, item := range v {
			quote, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("quote #%d is a %T, want an object", i, item)
			}
			symbol, _ := quote["symbol"].(string)
			if symbol == "" {
				return nil, fmt.Errorf("quote #%d has no symbol", i)
			}
			price, err := priceValue(quote["price"])
			if err != nil {
				return nil, fmt.Errorf("invalid price for %q: %w", symbol, err)
			}
			prices[symbol] = price
		}
	default:
		return nil, fmt.Errorf("quotes must be an object or an array, got %T", doc)
	}
	return prices, nil
}

// priceValue reads a price that may have been written as a string.
func priceValue(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		// some feeds use a decimal comma
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", "."))
		if err != nil {
			return math.NaN(), err
		}
		return d.InexactFloat64(), nil
	default:
		return math.NaN(), fmt.Errorf("want a number, got %T", raw)
	}
}
