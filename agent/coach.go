package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/date"
	"github.com/etnz/tradejournal/docs"
	"github.com/etnz/tradejournal/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a trading coach reviewing the user's trade journal with them.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Ground every statement on figures from the experts, never invent a number.
			Point out what works and what does not: symbols, tags (setups), months, win rate
			versus average gain. Suggest concrete habits to keep or to drop.
			You do not give investment advice on what to buy or sell next.

			Answer in markdown, in the language of the user.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// Books is the journal the analyst works on.
type Books struct {
	Trades   []tradejournal.Trade
	Prices   tradejournal.Prices
	Currency string
}

// NewAnalyst returns the expert reading the journal views of books.
func NewAnalyst(books *Books, model string) *Expert {
	lib := books.Functions()
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads the user's trade journal and computes positions,
		realized P&L by day or month, the performance of each tag (setup), open positions at current prices
		and the chronological trade log.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst in charge of the user's trade journal.
				You know how to use the Tools to extract relevant figures about the user's trading.
				You are part of a team, they might ask you questions about the journal,
				pardon their approximative language and figure out what they meant.

				Use the Manual tool when you need to explain how a figure is computed.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	output, err := f.Func(ctx, args)
	return respond(id, f.Decl.Name, output, err)
}

// markdownTable is the response schema of the journal views.
var markdownTable = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown document with the requested figures.",
}

func dateParam(bound string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Description: fmt.Sprintf("Optional %s date of the range, YYYY-MM-DD or relative to today like -1m. Open when empty.", bound),
	}
}

// Functions returns the journal views the analyst can call.
func (b *Books) Functions() []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summaries",
				Description: "Per symbol totals: quantities bought and sold, open position, average cost, realized P&L and win rate.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"symbol": {Type: genai.TypeString, Description: "Optional symbol to restrict the summary to."},
					},
				},
				Response: markdownTable,
			},
			Func: b.summaries,
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "RealizedPnL",
				Description: "Realized P&L summed by day or by month, only periods with at least one sell.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"bucket": {Type: genai.TypeString, Enum: []string{"daily", "monthly"}, Description: "Period size, daily by default."},
						"from":   dateParam("start"),
						"to":     dateParam("end"),
					},
				},
				Response: markdownTable,
			},
			Func: b.realizedPnL,
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "TagPerformance",
				Description: "Performance of each tag found on sells. A sell with several tags counts fully under each of them.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"sort": {Type: genai.TypeString, Enum: []string{"count", "pnl", "winrate", "name"}, Description: "Sort order, count by default."},
					},
				},
				Response: markdownTable,
			},
			Func: b.tagPerformance,
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Holdings",
				Description: "Open positions valued at current prices, with unrealized P&L, and portfolio totals.",
				Response:    markdownTable,
			},
			Func: b.holdings,
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "TradeLog",
				Description: "Chronological list of trades with the P&L realized by each sell and the position left after it.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"symbol": {Type: genai.TypeString, Description: "Optional symbol to restrict the log to."},
						"from":   dateParam("start"),
						"to":     dateParam("end"),
					},
				},
				Response: markdownTable,
			},
			Func: b.tradeLog,
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Manual",
				Description: "The user manual of the trade journal. Topic 'accounting' explains how figures are computed.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {Type: genai.TypeString, Description: "The topic to read, 'readme' lists them."},
					},
					Required: []string{"topic"},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "The topic in markdown."},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				topic, err := stringArg(args, "topic")
				if err != nil {
					return "", err
				}
				if topic == "" {
					topic = "readme"
				}
				return docs.GetTopic(topic)
			},
		},
	}
}

func (b *Books) summaries(_ context.Context, args map[string]any) (string, error) {
	symbol, err := stringArg(args, "symbol")
	if err != nil {
		return "", err
	}
	summaries := tradejournal.Summaries(b.Trades)
	if symbol != "" {
		s, ok := tradejournal.Summary(b.Trades, symbol)
		if !ok {
			return "", fmt.Errorf("symbol %q is not in the journal, known symbols are %s", symbol, symbols(summaries))
		}
		summaries = []tradejournal.SymbolSummary{s}
	}
	return renderer.SummaryMarkdown(summaries, b.Currency), nil
}

func (b *Books) realizedPnL(_ context.Context, args map[string]any) (string, error) {
	s, err := stringArg(args, "bucket")
	if err != nil {
		return "", err
	}
	bucket := tradejournal.Daily
	if s != "" {
		if bucket, err = tradejournal.ParseBucket(s); err != nil {
			return "", err
		}
	}
	r, err := rangeArgs(args)
	if err != nil {
		return "", err
	}
	points := tradejournal.Series(b.Trades, bucket)
	if r != (date.Range{}) {
		points = tradejournal.FilterPoints(points, r)
	}
	return renderer.SeriesMarkdown(points, bucket, b.Currency), nil
}

func (b *Books) tagPerformance(_ context.Context, args map[string]any) (string, error) {
	s, err := stringArg(args, "sort")
	if err != nil {
		return "", err
	}
	order, err := tradejournal.ParseTagOrder(s)
	if err != nil {
		return "", err
	}
	perfs := tradejournal.TagStats(b.Trades)
	tradejournal.SortTags(perfs, order)
	return renderer.TagsMarkdown(perfs, b.Currency), nil
}

func (b *Books) holdings(_ context.Context, _ map[string]any) (string, error) {
	summaries := tradejournal.Summaries(b.Trades)
	return renderer.HoldingMarkdown(
		tradejournal.Holdings(summaries, b.Prices),
		tradejournal.Overall(summaries, b.Prices),
		b.Currency), nil
}

func (b *Books) tradeLog(_ context.Context, args map[string]any) (string, error) {
	symbol, err := stringArg(args, "symbol")
	if err != nil {
		return "", err
	}
	r, err := rangeArgs(args)
	if err != nil {
		return "", err
	}
	var entries []tradejournal.Entry
	for _, e := range tradejournal.Journal(b.Trades) {
		if symbol != "" && e.Symbol != symbol {
			continue
		}
		if on, err := date.ParseISO(e.Date); err != nil || !r.Contains(on) {
			continue
		}
		entries = append(entries, e)
	}
	return renderer.LogMarkdown(entries, b.Currency), nil
}

// rangeArgs reads the optional "from" and "to" arguments.
func rangeArgs(args map[string]any) (date.Range, error) {
	var r date.Range
	for name, d := range map[string]*date.Date{"from": &r.From, "to": &r.To} {
		s, err := stringArg(args, name)
		if err != nil {
			return r, err
		}
		if s == "" {
			continue
		}
		if *d, err = date.Parse(s); err != nil {
			return r, fmt.Errorf("argument %q must be a valid date got %q. Below is the doc about the date format\n\n%s", name, s, must(docs.GetTopic("dates")))
		}
	}
	return r, nil
}

func symbols(summaries []tradejournal.SymbolSummary) string {
	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Symbol)
	}
	return strings.Join(names, ", ")
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
