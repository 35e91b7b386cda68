package tradejournal

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestDecodeTrades(t *testing.T) {
	journal := `{"id":"t1","date":"2025-11-03","symbol":"AAA","side":"BUY","price":100.5,"quantity":10,"tags":"swing, breakout"}

{"id":"t2","date":"2025-11-04","symbol":"AAA","side":"sell","price":"110","quantity":4,"tags":["swing",""],"memo":"took profit"}
`
	trades, err := DecodeTrades(strings.NewReader(journal))
	if err != nil {
		t.Fatalf("DecodeTrades() unexpected error: %v", err)
	}
	want := []Trade{
		{ID: "t1", Date: "2025-11-03", Symbol: "AAA", Side: Buy, Price: 100.5, Quantity: 10, Tags: Tags{"swing", "breakout"}},
		{ID: "t2", Date: "2025-11-04", Symbol: "AAA", Side: Sell, Price: 110, Quantity: 4, Tags: Tags{"swing"}, Memo: "took profit"},
	}
	if !reflect.DeepEqual(trades, want) {
		t.Errorf("DecodeTrades() = %+v, want %+v", trades, want)
	}
}

func TestDecodeTrades_Errors(t *testing.T) {
	tests := []struct {
		name    string
		journal string
		want    string
	}{
		{"not json", `{"id":"1","date":"2025-01-01","symbol":"AAA","side":"BUY","price":1,"quantity":1}` + "\nnope\n", "line 2"},
		{"bad side", `{"id":"1","side":"HOLD"}`, "unknown trade side"},
		{"bad tags", `{"id":"1","side":"BUY","tags":3}`, "tags must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTrades(strings.NewReader(tt.journal))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DecodeTrades() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeTrades_LongMemo(t *testing.T) {
	memo := strings.Repeat("m", 200*1024)
	journal := `{"id":"t1","date":"2025-01-01","symbol":"AAA","side":"BUY","price":1,"quantity":1,"memo":"` + memo + `"}` + "\n" +
		`{"id":"t2","date":"2025-01-02","symbol":"AAA","side":"SELL","price":2,"quantity":1}` + "\n"
	trades, err := DecodeTrades(strings.NewReader(journal))
	if err != nil {
		t.Fatalf("DecodeTrades() with a %d bytes memo error = %v", len(memo), err)
	}
	if len(trades) != 2 || trades[0].Memo != memo {
		t.Errorf("DecodeTrades() = %d trades, want 2 with the long memo kept", len(trades))
	}
}

func TestEncodeTrades(t *testing.T) {
	var buf bytes.Buffer
	trades := []Trade{
		NewSell("t2", "2025-11-04", "AAA", 4, 110.25, "swing", "swing"),
		NewBuy("t1", "2025-11-03", "AAA", 10, 100),
	}
	if err := EncodeTrades(&buf, trades); err != nil {
		t.Fatalf("EncodeTrades() unexpected error: %v", err)
	}
	want := `{"id":"t1","date":"2025-11-03","symbol":"AAA","side":"BUY","price":100,"quantity":10}
{"id":"t2","date":"2025-11-04","symbol":"AAA","side":"SELL","price":110.25,"quantity":4,"tags":["swing"]}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeTrades() =\n%s\nwant\n%s", got, want)
	}

	decoded, err := DecodeTrades(&buf)
	if err != nil {
		t.Fatalf("DecodeTrades() unexpected error: %v", err)
	}
	if got := ids(decoded); !slices.Equal(got, []string{"t1", "t2"}) {
		t.Errorf("decoded ids = %v", got)
	}
	if !reflect.DeepEqual(decoded[1].Tags, Tags{"swing"}) {
		t.Errorf("decoded tags = %v", decoded[1].Tags)
	}
}

func TestSymbolSummary_MarshalJSON(t *testing.T) {
	s := SymbolSummary{Symbol: "AAA", Trades: 2, PositionQty: 5, AvgCost: 150, RealizedPnL: math.NaN(),
		Outcome: Outcome{TradeCount: 1, WinCount: 1}}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	got := string(b)
	for _, want := range []string{`"symbol":"AAA"`, `"positionQty":5`, `"avgCost":150`, `"realizedPnL":null`, `"winRate":100`} {
		if !strings.Contains(got, want) {
			t.Errorf("json = %s, want it to contain %s", got, want)
		}
	}
	if !strings.HasPrefix(got, `{"symbol":`) {
		t.Errorf("json = %s, want symbol first", got)
	}
}

func TestHolding_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Holding{Symbol: "CCC", PositionQty: 4, AvgCost: 25, CostBasis: 100})
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	if strings.Contains(string(b), "marketValue") {
		t.Errorf("unpriced holding json = %s, want no market value", b)
	}
}
