package tradejournal

import (
	"fmt"
	"sort"
	"strings"
)

// TagPerf is the performance of the sells carrying one tag.
//
// A sell with several tags counts fully under each of them: amounts are
// attributed, not split.
type TagPerf struct {
	Tag            string
	RealizedPnL    float64
	AvgPnLPerTrade float64 // 0 when TradeCount is 0
	Outcome
}

// TagStats replays trades and returns the performance of every tag found on
// a sell, most used tag first.
func TagStats(trades []Trade) []TagPerf {
	index := make(map[string]*TagPerf)
	walk(trades, func(t Trade, realized float64) {
		if t.Side != Sell {
			return
		}
		for _, tag := range t.Tags.Set() {
			p, ok := index[tag]
			if !ok {
				p = &TagPerf{Tag: tag}
				index[tag] = p
			}
			p.RealizedPnL += realized
			p.record(realized)
		}
	})

	perfs := make([]TagPerf, 0, len(index))
	for _, p := range index {
		if p.TradeCount != 0 {
			p.AvgPnLPerTrade = p.RealizedPnL / float64(p.TradeCount)
		}
		perfs = append(perfs, *p)
	}
	SortTags(perfs, ByCount)
	return perfs
}

// TagOrder selects how tag performances are sorted.
type TagOrder int

const (
	ByCount   TagOrder = iota // most sells first
	ByPnL                     // highest realized P&L first
	ByWinRate                 // highest win rate first
	ByName                    // alphabetical
)

func (o TagOrder) String() string {
	switch o {
	case ByCount:
		return "count"
	case ByPnL:
		return "pnl"
	case ByWinRate:
		return "winrate"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// ParseTagOrder parses a TagOrder from its name.
func ParseTagOrder(s string) (TagOrder, error) {
	switch strings.ToLower(s) {
	case "count", "":
		return ByCount, nil
	case "pnl":
		return ByPnL, nil
	case "winrate":
		return ByWinRate, nil
	case "name":
		return ByName, nil
	default:
		return ByCount, fmt.Errorf("unknown tag order: %q", s)
	}
}

// SortTags sorts perfs in place. Ties are always broken by tag name.
func SortTags(perfs []TagPerf, order TagOrder) {
	sort.SliceStable(perfs, func(i, j int) bool {
		a, b := perfs[i], perfs[j]
		switch order {
		case ByCount:
			if a.TradeCount != b.TradeCount {
				return a.TradeCount > b.TradeCount
			}
		case ByPnL:
			if a.RealizedPnL != b.RealizedPnL {
				return a.RealizedPnL > b.RealizedPnL
			}
		case ByWinRate:
			if ar, br := a.WinRate(), b.WinRate(); ar != br {
				return ar > br
			}
		}
		return a.Tag < b.Tag
	})
}
