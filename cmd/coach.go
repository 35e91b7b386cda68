package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradejournal/agent"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// coachCmd is the subcommand for the AI trading coach.
type coachCmd struct {
	model string
}

func (*coachCmd) Name() string { return "coach" }
func (*coachCmd) Synopsis() string {
	return "start an interactive review of the journal with an AI coach"
}
func (*coachCmd) Usage() string {
	return `tj coach [-model <model>] [<question>]

  Starts an interactive session with an AI trading coach that can read the
  journal views: positions, realized P&L, tag performance, open positions
  and the trade log. An optional question starts the conversation.

  Requires GEMINI_API_KEY, in the environment or in a .env file.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", agent.DefaultModel, "Gemini model used by the coach.")
}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	trades, err := a.loadTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prices, err := a.loadPrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	books := &agent.Books{Trades: trades, Prices: prices, Currency: a.Currency}
	coach := agent.New(stdout, os.Stdin, c.model, agent.NewAnalyst(books, c.model))
	coach.Render = func(markdown string) string {
		var b strings.Builder
		writeMarkdown(&b, markdown, *rawOutput)
		return b.String()
	}
	coach.Log = a.log

	if err := coach.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		a.log.Error("coach failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
