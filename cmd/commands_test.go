package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/date"
	"github.com/google/subcommands"
)

// useJournal points the global flags to a journal holding content, and to no
// configuration file.
func useJournal(t *testing.T, content string) string {
	t.Helper()
	path := writeFile(t, "trades.jsonl", content)

	oldConfig := *configFile
	*configFile = filepath.Join(t.TempDir(), "none.yaml")
	if err := flag.Set("trades-file", path); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("prices-file", ""); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { *configFile = oldConfig })
	return path
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestFmtCmd(t *testing.T) {
	journal := `{"id":"b","date":"2025-11-2","symbol":" AAA ","side":"sell","price":"110","quantity":2,"tags":"swing, swing"}

{"id":"a","date":"2025-11-01","symbol":"AAA","side":"BUY","price":100,"quantity":5,"memo":"first"}
`
	want := `{"id":"a","date":"2025-11-01","symbol":"AAA","side":"BUY","price":100,"quantity":5,"memo":"first"}
{"id":"b","date":"2025-11-02","symbol":"AAA","side":"SELL","price":110,"quantity":2,"tags":["swing"]}
`
	path := useJournal(t, journal)

	if status := execute(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want success", status)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("fmt wrote:\n%s\nwant:\n%s", got, want)
	}

	// no temporary file is left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("fmt left %d files in the journal folder, want 1", len(entries))
	}
}

func TestFmtCmd_Output(t *testing.T) {
	journal := `{"id":"a","date":"2025-11-01","symbol":"AAA","side":"BUY","price":100,"quantity":5}` + "\n"
	path := useJournal(t, journal)
	out := filepath.Join(t.TempDir(), "formatted.jsonl")

	if status := execute(t, &fmtCmd{}, "-o", out); status != subcommands.ExitSuccess {
		t.Fatalf("fmt -o = %v, want success", status)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("fmt -o did not write %s: %v", out, err)
	}
	if got, _ := os.ReadFile(path); string(got) != journal {
		t.Errorf("fmt -o modified the journal:\n%s", got)
	}
}

func TestFmtCmd_Invalid(t *testing.T) {
	journal := `{"id":"a","date":"someday","symbol":"AAA","side":"BUY","price":100,"quantity":5}` + "\n"
	path := useJournal(t, journal)

	if status := execute(t, &fmtCmd{}); status != subcommands.ExitFailure {
		t.Errorf("fmt on invalid journal = %v, want failure", status)
	}
	if got, _ := os.ReadFile(path); string(got) != journal {
		t.Errorf("fmt modified an invalid journal:\n%s", got)
	}
}

func TestValidateCmd(t *testing.T) {
	oversold := `{"id":"a","date":"2025-11-01","symbol":"AAA","side":"BUY","price":100,"quantity":5}
{"id":"b","date":"2025-11-02","symbol":"AAA","side":"SELL","price":100,"quantity":8}
`
	tests := []struct {
		journal string
		args    []string
		want    subcommands.ExitStatus
	}{
		{oversold, nil, subcommands.ExitSuccess},
		{oversold, []string{"-strict"}, subcommands.ExitFailure},
		{`{"id":"a","date":"2025-11-01","symbol":"","side":"BUY","price":100,"quantity":5}`, nil, subcommands.ExitFailure},
		{`{"id":"a","side":"HOLD"}`, nil, subcommands.ExitFailure},
		{"", nil, subcommands.ExitSuccess},
	}
	for _, test := range tests {
		useJournal(t, test.journal)
		if got := execute(t, &validateCmd{}, test.args...); got != test.want {
			t.Errorf("validate %v on %q = %v, want %v", test.args, test.journal, got, test.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       date.Range
		wantErr    bool
	}{
		{"", "", date.Range{}, false},
		{"2025-01-01", "", date.Range{From: date.New(2025, 1, 1)}, false},
		{"", "2025-01-31", date.Range{To: date.New(2025, 1, 31)}, false},
		{"2025-01-01", "2025-01-31", date.Range{From: date.New(2025, 1, 1), To: date.New(2025, 1, 31)}, false},
		{"2025-01-31", "2025-01-01", date.Range{}, true},
		{"soon", "", date.Range{}, true},
		{"", "later", date.Range{}, true},
	}
	for _, test := range tests {
		got, err := parseRange(test.start, test.end)
		if (err != nil) != test.wantErr {
			t.Errorf("parseRange(%q, %q) error = %v, wantErr %v", test.start, test.end, err, test.wantErr)
			continue
		}
		if !test.wantErr && got != test.want {
			t.Errorf("parseRange(%q, %q) = %v, want %v", test.start, test.end, got, test.want)
		}
	}
}

func TestFilterEntries(t *testing.T) {
	entries := tradejournal.Journal([]tradejournal.Trade{
		tradejournal.NewBuy("t1", "2025-10-01", "AAA", 10, 100),
		tradejournal.NewBuy("t2", "2025-10-15", "BBB", 10, 10),
		tradejournal.NewSell("t3", "2025-11-01", "AAA", 5, 120),
	})
	tests := []struct {
		r      date.Range
		symbol string
		want   string
	}{
		{date.Range{}, "", "t1,t2,t3"},
		{date.Range{}, "AAA", "t1,t3"},
		{date.Range{From: date.New(2025, 10, 15)}, "", "t2,t3"},
		{date.Range{To: date.New(2025, 10, 15)}, "AAA", "t1"},
		{date.Range{}, "ZZZ", ""},
	}
	for _, test := range tests {
		var ids []string
		for _, e := range filterEntries(entries, test.r, test.symbol) {
			ids = append(ids, e.ID)
		}
		if got := strings.Join(ids, ","); got != test.want {
			t.Errorf("filterEntries(%v, %q) = %s, want %s", test.r, test.symbol, got, test.want)
		}
	}

	// filtering keeps the replay of the whole journal.
	kept := filterEntries(entries, date.Range{From: date.New(2025, 11, 1)}, "")
	if len(kept) != 1 || kept[0].Realized != 100 || kept[0].PositionQty != 5 {
		t.Errorf("filterEntries() = %+v, want t3 realizing 100 with 5 left", kept)
	}
}

func TestWriteMarkdown_Raw(t *testing.T) {
	var b bytes.Buffer
	writeMarkdown(&b, "# Title\n\nsome **bold** text\n", true)
	if got := b.String(); got != "# Title\n\nsome **bold** text\n" {
		t.Errorf("writeMarkdown(raw) = %q, want the markdown untouched", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	points := tradejournal.DailyPnL([]tradejournal.Trade{
		tradejournal.NewBuy("t1", "2025-10-01", "AAA", 10, 100),
		tradejournal.NewSell("t2", "2025-10-02", "AAA", 10, 101.5),
	})
	if err := writeJSON(&b, points); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("writeJSON() wrote invalid JSON %q: %v", b.String(), err)
	}
	if len(got) != 1 || got[0]["key"] != "2025-10-02" || got[0]["value"] != 15.0 {
		t.Errorf("writeJSON() = %v, want one point of 15 on 2025-10-02", got)
	}
	if !strings.Contains(b.String(), "\n  ") {
		t.Errorf("writeJSON() = %q, want indented JSON", b.String())
	}
}

func TestWriteJournal(t *testing.T) {
	path := writeFile(t, "trades.jsonl", "previous content\n")
	trades := []tradejournal.Trade{tradejournal.NewBuy("t1", "2025-10-01", "AAA", 10, 100)}
	if err := writeJournal(path, trades); err != nil {
		t.Fatalf("writeJournal() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	want := `{"id":"t1","date":"2025-10-01","symbol":"AAA","side":"BUY","price":100,"quantity":10}` + "\n"
	if string(got) != want {
		t.Errorf("writeJournal() wrote %q, want %q", got, want)
	}

	if err := writeJournal(filepath.Join(t.TempDir(), "missing", "trades.jsonl"), trades); err == nil {
		t.Error("writeJournal() in a missing folder error = nil, want an error")
	}
}

func TestTopicIndex(t *testing.T) {
	index, err := topicIndex()
	if err != nil {
		t.Fatalf("topicIndex() error = %v", err)
	}
	for _, topic := range []string{"trades", "accounting", "prices", "dates", "config", "coach"} {
		if !strings.Contains(index, "  "+topic+" ") {
			t.Errorf("topicIndex() does not list %q:\n%s", topic, index)
		}
	}
	if strings.Contains(index, "readme") {
		t.Errorf("topicIndex() lists the readme:\n%s", index)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, g := range groups() {
		for _, cmd := range g.commands {
			if _, ok := c.Sub[cmd.Name()]; !ok {
				t.Errorf("Completion() misses command %q", cmd.Name())
			}
		}
	}
	if _, ok := c.Sub["pnl"].Flags["bucket"]; !ok {
		t.Error("Completion() misses flag pnl -bucket")
	}
	if p, ok := c.Sub["validate"].Flags["strict"]; !ok || p != nil {
		t.Errorf("Completion() validate -strict = %v, %v, want a flag without value", p, ok)
	}
	if _, ok := c.Flags["trades-file"]; !ok {
		t.Error("Completion() misses global flag -trades-file")
	}
	if c.Sub["topic"].Args == nil {
		t.Error("Completion() does not predict topics")
	}
}
