package cmd

import (
	"bytes"
	"encoding/json"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const reportsJournal = `{"id":"a","date":"2025-10-01","symbol":"AAA","side":"BUY","price":100,"quantity":10,"tags":["breakout"]}
{"id":"b","date":"2025-10-10","symbol":"AAA","side":"SELL","price":120,"quantity":5,"tags":["breakout"]}
{"id":"c","date":"2025-11-01","symbol":"BBB","side":"BUY","price":50,"quantity":10}
{"id":"d","date":"2025-11-03","symbol":"BBB","side":"SELL","price":45,"quantity":10,"tags":["swing","alpha"]}
`

// useConfig points the global -config flag to a YAML file holding content.
func useConfig(t *testing.T, content string) {
	t.Helper()
	old := *configFile
	*configFile = writeFile(t, "tj.yaml", content)
	t.Cleanup(func() { *configFile = old })
}

// executeJSON runs c with -json and decodes what it printed into v.
func executeJSON(t *testing.T, c subcommands.Command, v any, args ...string) subcommands.ExitStatus {
	t.Helper()
	var b bytes.Buffer
	oldOut, oldJSON := stdout, *jsonOutput
	stdout, *jsonOutput = &b, true
	defer func() { stdout, *jsonOutput = oldOut, oldJSON }()

	status := execute(t, c, args...)
	if status == subcommands.ExitSuccess {
		if err := json.Unmarshal(b.Bytes(), v); err != nil {
			t.Fatalf("%s %v printed invalid JSON %q: %v", c.Name(), args, b.String(), err)
		}
	}
	return status
}

func pointKeys(points []map[string]any) string {
	var keys []string
	for _, p := range points {
		keys = append(keys, p["key"].(string))
	}
	return strings.Join(keys, ",")
}

func TestPnlCmd(t *testing.T) {
	tests := []struct {
		args   []string
		want   string
		values []float64
	}{
		{nil, "2025-10-10,2025-11-03", []float64{100, -50}},
		{[]string{"-bucket", "monthly"}, "2025-10,2025-11", []float64{100, -50}},
		{[]string{"-bucket", "monthly", "-s", "2025-11-01", "-d", "2025-11-30"}, "2025-11", []float64{-50}},
		{[]string{"-s", "2025-10-11"}, "2025-11-03", []float64{-50}},
		{[]string{"-d", "2025-09-30"}, "", nil},
	}
	for _, test := range tests {
		useJournal(t, reportsJournal)
		var points []map[string]any
		if status := executeJSON(t, &pnlCmd{}, &points, test.args...); status != subcommands.ExitSuccess {
			t.Errorf("pnl %v = %v, want success", test.args, status)
			continue
		}
		if got := pointKeys(points); got != test.want {
			t.Errorf("pnl %v keys = %s, want %s", test.args, got, test.want)
			continue
		}
		for i, p := range points {
			if p["value"] != test.values[i] {
				t.Errorf("pnl %v %s = %v, want %v", test.args, p["key"], p["value"], test.values[i])
			}
		}
	}
}

func TestPnlCmd_Usage(t *testing.T) {
	useJournal(t, reportsJournal)
	for _, args := range [][]string{
		{"-bucket", "weekly"},
		{"-s", "2025-11-30", "-d", "2025-11-01"},
		{"-s", "someday"},
	} {
		if status := execute(t, &pnlCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("pnl %v = %v, want a usage error", args, status)
		}
	}
}

func tagNames(perfs []map[string]any) string {
	var names []string
	for _, p := range perfs {
		names = append(names, p["tag"].(string))
	}
	return strings.Join(names, ",")
}

func TestTagsCmd(t *testing.T) {
	tests := []struct {
		config string
		args   []string
		want   string
	}{
		{"", nil, "alpha,breakout,swing"},
		{"tag_order: pnl\n", nil, "breakout,alpha,swing"},
		{"tag_order: pnl\n", []string{"-sort", "name"}, "alpha,breakout,swing"},
		{"", []string{"-sort", "pnl"}, "breakout,alpha,swing"},
	}
	for _, test := range tests {
		useJournal(t, reportsJournal)
		useConfig(t, test.config)
		var perfs []map[string]any
		if status := executeJSON(t, &tagsCmd{}, &perfs, test.args...); status != subcommands.ExitSuccess {
			t.Errorf("tags %v with config %q = %v, want success", test.args, test.config, status)
			continue
		}
		if got := tagNames(perfs); got != test.want {
			t.Errorf("tags %v with config %q = %s, want %s", test.args, test.config, got, test.want)
		}
	}
}

func TestTagsCmd_InvalidOrder(t *testing.T) {
	useJournal(t, reportsJournal)
	if status := execute(t, &tagsCmd{}, "-sort", "luck"); status != subcommands.ExitUsageError {
		t.Errorf("tags -sort luck = %v, want a usage error", status)
	}
	useConfig(t, "tag_order: luck\n")
	if status := execute(t, &tagsCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("tags with tag_order luck = %v, want a usage error", status)
	}
}

func TestSummaryCmd(t *testing.T) {
	useJournal(t, reportsJournal)
	var summaries []map[string]any
	if status := executeJSON(t, &summaryCmd{}, &summaries); status != subcommands.ExitSuccess {
		t.Fatalf("summary = %v, want success", status)
	}
	if len(summaries) != 2 || summaries[0]["symbol"] != "AAA" || summaries[0]["realizedPnL"] != 100.0 || summaries[0]["positionQty"] != 5.0 {
		t.Errorf("summary = %v, want AAA realizing 100 with 5 left, then BBB", summaries)
	}

	summaries = nil
	if status := executeJSON(t, &summaryCmd{}, &summaries, "-symbol", "BBB"); status != subcommands.ExitSuccess {
		t.Fatalf("summary -symbol BBB = %v, want success", status)
	}
	if len(summaries) != 1 || summaries[0]["realizedPnL"] != -50.0 {
		t.Errorf("summary -symbol BBB = %v, want one summary realizing -50", summaries)
	}

	if status := execute(t, &summaryCmd{}, "-symbol", "ZZZ"); status != subcommands.ExitFailure {
		t.Errorf("summary -symbol ZZZ = %v, want failure", status)
	}
}

func TestHoldingCmd(t *testing.T) {
	useJournal(t, reportsJournal)
	if err := flag.Set("prices-file", writeFile(t, "prices.json", `{"AAA": 130, "BBB": 40}`)); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Holdings []map[string]any `json:"holdings"`
		Overall  map[string]any   `json:"overall"`
	}
	if status := executeJSON(t, &holdingCmd{}, &got); status != subcommands.ExitSuccess {
		t.Fatalf("holding = %v, want success", status)
	}
	if len(got.Holdings) != 1 || got.Holdings[0]["symbol"] != "AAA" || got.Holdings[0]["unrealizedPnL"] != 150.0 {
		t.Errorf("holding holdings = %v, want AAA with 150 unrealized", got.Holdings)
	}
	if got.Overall["totalPnL"] != 200.0 {
		t.Errorf("holding overall totalPnL = %v, want 200", got.Overall["totalPnL"])
	}
}

func TestHoldingCmd_MissingPrices(t *testing.T) {
	useJournal(t, reportsJournal)
	if err := flag.Set("prices-file", "does-not-exist.json"); err != nil {
		t.Fatal(err)
	}
	if status := execute(t, &holdingCmd{}); status != subcommands.ExitFailure {
		t.Errorf("holding with a missing prices file = %v, want failure", status)
	}
}

func TestLogCmd(t *testing.T) {
	useJournal(t, reportsJournal)
	var entries []map[string]any
	if status := executeJSON(t, &logCmd{}, &entries, "-symbol", "BBB", "-s", "2025-11-02"); status != subcommands.ExitSuccess {
		t.Fatalf("log = %v, want success", status)
	}
	if len(entries) != 1 || entries[0]["realized"] != -50.0 || entries[0]["positionQty"] != 0.0 {
		t.Errorf("log -symbol BBB -s 2025-11-02 = %v, want the sell of d realizing -50", entries)
	}
}

func TestReportCmd(t *testing.T) {
	useJournal(t, reportsJournal)
	var report map[string]any
	if status := executeJSON(t, &reportCmd{}, &report); status != subcommands.ExitSuccess {
		t.Fatalf("report = %v, want success", status)
	}
	for _, key := range []string{"summaries", "holdings", "daily", "monthly", "tags", "overall"} {
		if _, ok := report[key]; !ok {
			t.Errorf("report has no %q", key)
		}
	}
	if monthly, _ := report["monthly"].([]any); len(monthly) != 2 {
		t.Errorf("report monthly = %v, want 2 months", report["monthly"])
	}
}

func TestReportCmd_InvalidJournal(t *testing.T) {
	useJournal(t, `{"id":"a","date":"2025-10-01","symbol":"","side":"BUY","price":100,"quantity":10}`)
	if status := execute(t, &reportCmd{}); status != subcommands.ExitFailure {
		t.Errorf("report on an invalid journal = %v, want failure", status)
	}
}
