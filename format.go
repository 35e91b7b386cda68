package tradejournal

import (
	"strings"

	"github.com/etnz/tradejournal/date"
)

// Format returns the journal in canonical form, in evaluation order: dates
// written as YYYY-MM-DD, ids and symbols trimmed, tags deduplicated.
//
// The formatted journal must pass ValidateTrades, otherwise the validation
// errors are returned.
func Format(trades []Trade) ([]Trade, error) {
	formatted := make([]Trade, 0, len(trades))
	for _, t := range trades {
		t.ID = strings.TrimSpace(t.ID)
		t.Symbol = strings.TrimSpace(t.Symbol)
		t.Memo = strings.TrimSpace(t.Memo)
		if d, err := date.ParseISO(t.Date); err == nil {
			t.Date = d.String()
		}
		tags := t.Tags.Set()
		t.Tags = nil
		if len(tags) > 0 {
			t.Tags = tags
		}
		formatted = append(formatted, t)
	}
	if err := ValidateTrades(formatted, ValidationOptions{}); err != nil {
		return nil, err
	}
	return Ordered(formatted), nil
}
