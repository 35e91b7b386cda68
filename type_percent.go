package tradejournal

import "fmt"

// Percent is a ratio expressed in percent (20 means 20%).
type Percent float64

// percentOf returns part/whole*100, or 0 when whole is 0.
func percentOf(part, whole float64) Percent {
	if whole == 0 {
		return 0
	}
	return Percent(part / whole * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString always shows the sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
