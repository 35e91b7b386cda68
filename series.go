package tradejournal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/tradejournal/date"
)

// Bucket is the time granularity of a realized P&L series.
type Bucket int

const (
	Daily Bucket = iota
	Monthly
)

func (b Bucket) String() string {
	switch b {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ParseBucket parses "daily" ("day") or "monthly" ("month").
func ParseBucket(s string) (Bucket, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown bucket %q", s)
	}
}

// OtherBucket is the monthly key collecting days whose key is too short to
// hold a month.
const OtherBucket = "other"

// PnLPoint is the realized P&L summed over one bucket.
type PnLPoint struct {
	Key   string // YYYY-MM-DD or YYYY-MM
	Label string
	Value float64
}

// DailyPnL returns the realized P&L of each day having at least one sell,
// sorted by day.
func DailyPnL(trades []Trade) []PnLPoint {
	sums := make(map[string]float64)
	walk(trades, func(t Trade, realized float64) {
		if t.Side == Sell {
			sums[t.Date] += realized
		}
	})

	points := make([]PnLPoint, 0, len(sums))
	for day, value := range sums {
		points = append(points, PnLPoint{Key: day, Label: day, Value: value})
	}
	sortPoints(points)
	return points
}

// MonthlyPnL groups daily points by month (the first 7 characters of their
// key) and returns the monthly sums sorted by month.
func MonthlyPnL(daily []PnLPoint) []PnLPoint {
	sums := make(map[string]float64)
	for _, p := range daily {
		key := OtherBucket
		if len(p.Key) >= 7 {
			key = p.Key[:7]
		}
		sums[key] += p.Value
	}

	points := make([]PnLPoint, 0, len(sums))
	for key, value := range sums {
		points = append(points, PnLPoint{Key: key, Label: MonthLabel(key), Value: value})
	}
	sortPoints(points)
	return points
}

// Series returns the realized P&L series at the given granularity.
func Series(trades []Trade, bucket Bucket) []PnLPoint {
	daily := DailyPnL(trades)
	if bucket == Monthly {
		return MonthlyPnL(daily)
	}
	return daily
}

// MonthLabel formats a YYYY-MM key as "2025년 11월". Keys that do not hold a
// numeric year and month are returned unchanged, except OtherBucket.
func MonthLabel(key string) string {
	if key == OtherBucket {
		return "기타"
	}
	year, month, ok := strings.Cut(key, "-")
	if !ok {
		return key
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return key
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return key
	}
	return fmt.Sprintf("%d년 %d월", y, m)
}

// FilterPoints keeps the points whose bucket overlaps the range. Monthly keys
// match when any day of the month is in the range, points that do not hold a
// valid date are dropped.
func FilterPoints(points []PnLPoint, r date.Range) []PnLPoint {
	var kept []PnLPoint
	for _, p := range points {
		var from, to date.Date
		switch len(p.Key) {
		case len("2006-01-02"):
			d, err := date.ParseISO(p.Key)
			if err != nil {
				continue
			}
			from, to = d, d
		case len("2006-01"):
			d, err := date.ParseISO(p.Key + "-01")
			if err != nil {
				continue
			}
			from, to = d, d.EndOfMonth()
		default:
			continue
		}
		if r.Overlaps(date.Range{From: from, To: to}) {
			kept = append(kept, p)
		}
	}
	return kept
}

// TotalPnL sums the values of the points.
func TotalPnL(points []PnLPoint) float64 {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return total
}

func sortPoints(points []PnLPoint) {
	sort.Slice(points, func(i, j int) bool { return points[i].Key < points[j].Key })
}
