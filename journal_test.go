package tradejournal

import "testing"

func TestJournal(t *testing.T) {
	entries := Journal(sampleJournal())
	if len(entries) != 8 {
		t.Fatalf("Journal() returned %d entries, want 8", len(entries))
	}
	tests := []struct {
		id       string
		realized float64
		qty      float64
		avg      float64
	}{
		{"t01", 0, 10, 100},
		{"t02", 0, 20, 150},
		{"t03", 300, 10, 150},
		{"t04", 0, 5, 50},
		{"t05", -20, 3, 50},
		{"t06", 0, 0, 0},
		{"t07", 0, 4, 25},
		{"t08", 0, 5, 150},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.ID != tt.id {
			t.Errorf("entries[%d].ID = %q, want %q", i, e.ID, tt.id)
			continue
		}
		if !approx(e.Realized, tt.realized) || !approx(e.PositionQty, tt.qty) || !approx(e.AvgCost, tt.avg) {
			t.Errorf("%s: realized=%v qty=%v avg=%v, want %v %v %v", e.ID, e.Realized, e.PositionQty, e.AvgCost, tt.realized, tt.qty, tt.avg)
		}
	}
}

// The log and the summaries agree on every symbol.
func TestJournal_MatchesSummaries(t *testing.T) {
	realized := make(map[string]float64)
	for _, e := range Journal(sampleJournal()) {
		realized[e.Symbol] += e.Realized
	}
	for _, s := range Summaries(sampleJournal()) {
		if !approx(realized[s.Symbol], s.RealizedPnL) {
			t.Errorf("%s: journal realized %v, summary %v", s.Symbol, realized[s.Symbol], s.RealizedPnL)
		}
	}
}
