package date

import "fmt"

// Range represents a range of dates, both ends included. A zero From or To
// leaves that side open.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(d Date) bool {
	return (r.From.IsZero() || !d.Before(r.From)) && (r.To.IsZero() || !d.After(r.To))
}

// Overlaps reports whether the two ranges share at least one day. Other must
// be closed on both sides.
func (r Range) Overlaps(other Range) bool {
	return (r.From.IsZero() || !other.To.Before(r.From)) && (r.To.IsZero() || !other.From.After(r.To))
}

func (r Range) String() string {
	switch {
	case r.From.IsZero() && r.To.IsZero():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}
