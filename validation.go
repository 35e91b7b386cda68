package tradejournal

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/tradejournal/date"
)

var (
	ErrMissingID       = errors.New("missing id")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrMissingSymbol   = errors.New("missing symbol")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrOverselling     = errors.New("selling more than held")
)

// oversellTolerance absorbs float rounding on fractional quantities.
const oversellTolerance = 1e-9

// ValidationOptions tunes ValidateTrades.
type ValidationOptions struct {
	// ForbidOverselling rejects sells larger than the quantity held at that
	// point of the journal. The engine itself accepts them as short sales.
	ForbidOverselling bool
}

// Validate checks the fields of a single trade and returns every problem
// found, joined.
func (t Trade) Validate() error {
	var errs error
	if t.ID == "" {
		errs = errors.Join(errs, ErrMissingID)
	}
	if t.Symbol == "" {
		errs = errors.Join(errs, ErrMissingSymbol)
	}
	// the engine orders days as strings, only the canonical form sorts
	// chronologically.
	if d, err := date.ParseISO(t.Date); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: %w", ErrInvalidDate, err))
	} else if d.String() != t.Date {
		errs = errors.Join(errs, fmt.Errorf("%w: %q is not in %s form", ErrInvalidDate, t.Date, date.DateFormat))
	}
	if t.Side != Buy && t.Side != Sell {
		errs = errors.Join(errs, fmt.Errorf("%w: %d", ErrInvalidSide, t.Side))
	}
	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) || t.Price < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: %v", ErrInvalidPrice, t.Price))
	}
	if math.IsNaN(t.Quantity) || math.IsInf(t.Quantity, 0) || t.Quantity <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: %v", ErrInvalidQuantity, t.Quantity))
	}
	return errs
}

// ValidateTrades checks a whole journal before it is handed to the engine.
//
// All failures are reported, each one wrapped with the trade id so that
// errors.Is works on the result.
func ValidateTrades(trades []Trade, opts ValidationOptions) error {
	var errs error
	seen := make(map[string]struct{}, len(trades))
	for _, t := range trades {
		if err := t.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid trade %q: %w", t.ID, err))
		}
		if t.ID == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("invalid trade %q: %w", t.ID, ErrDuplicateID))
		}
		seen[t.ID] = struct{}{}
	}

	if opts.ForbidOverselling {
		held := make(map[string]float64)
		for _, t := range Ordered(trades) {
			switch t.Side {
			case Buy:
				held[t.Symbol] += t.Quantity
			case Sell:
				if t.Quantity-held[t.Symbol] > oversellTolerance {
					errs = errors.Join(errs, fmt.Errorf("invalid trade %q: %w: %v %s held on %s, %v sold",
						t.ID, ErrOverselling, held[t.Symbol], t.Symbol, t.Date, t.Quantity))
				}
				held[t.Symbol] -= t.Quantity
			}
		}
	}
	return errs
}
