// Package cmd implements the tj command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/tradejournal"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", ".tj.yaml", "Path to the YAML configuration file.")
	jsonOutput = flag.Bool("json", false, "Print JSON instead of markdown.")
	rawOutput  = flag.Bool("raw", false, "Print markdown without terminal styling.")
	Verbose    = flag.Bool("v", false, "Print debug logs on stderr.")
)

func init() {
	// read back by Config.ApplyFlags when explicitly set.
	flag.String("trades-file", "trades.jsonl", "Path to the journal (JSONL format).")
	flag.String("prices-file", "", "Path to the current prices (JSON format). Open positions are not valued without it.")
	flag.String("prices-path", "", "JSONPath expression selecting the quotes in the prices file.")
	flag.String("currency", "KRW", "ISO 4217 code of the currency used to display amounts.")
}

// group is a set of subcommands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

func groups() []group {
	return []group{
		{"reports", []subcommands.Command{&summaryCmd{}, &pnlCmd{}, &tagsCmd{}, &holdingCmd{}, &logCmd{}, &reportCmd{}}},
		{"journal", []subcommands.Command{&validateCmd{}, &fmtCmd{}}},
		{"help", []subcommands.Command{&topicCmd{}, &coachCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// app is what every command starts with: the resolved configuration and a
// logger.
type app struct {
	Config
	log *zap.Logger
}

// newApp resolves the configuration and builds the logger.
func newApp() (*app, error) {
	cfg, err := Settings()
	if err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.Debug("configuration", zap.Any("config", cfg))
	return &app{Config: cfg, log: log}, nil
}

// start is the common prologue of commands, errors are reported on stderr.
func start() (*app, subcommands.ExitStatus) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitUsageError
	}
	return a, subcommands.ExitSuccess
}

// decodeTrades reads the journal without validating it. A missing journal is
// an empty one.
func (a *app) decodeTrades() ([]tradejournal.Trade, error) {
	f, err := os.Open(a.TradesFile)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Warn("journal does not exist, using an empty journal", zap.String("file", a.TradesFile))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal %q: %w", a.TradesFile, err)
	}
	defer f.Close()

	trades, err := tradejournal.DecodeTrades(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal %q: %w", a.TradesFile, err)
	}
	a.log.Debug("journal decoded", zap.String("file", a.TradesFile), zap.Int("trades", len(trades)))
	return trades, nil
}

// loadTrades reads and validates the journal.
func (a *app) loadTrades() ([]tradejournal.Trade, error) {
	trades, err := a.decodeTrades()
	if err != nil {
		return nil, err
	}
	opts := tradejournal.ValidationOptions{ForbidOverselling: a.Strict}
	if err := tradejournal.ValidateTrades(trades, opts); err != nil {
		return nil, fmt.Errorf("invalid journal %q, run 'tj validate' for details: %w", a.TradesFile, err)
	}
	return trades, nil
}

// loadPrices reads the current prices, if a prices file is configured.
func (a *app) loadPrices() (tradejournal.Prices, error) {
	if a.PricesFile == "" {
		a.log.Debug("no prices file, open positions are not valued")
		return nil, nil
	}
	f, err := os.Open(a.PricesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open prices %q: %w", a.PricesFile, err)
	}
	defer f.Close()

	prices, err := tradejournal.DecodePrices(f, a.PricesPath)
	if err != nil {
		return nil, fmt.Errorf("could not decode prices %q: %w", a.PricesFile, err)
	}
	a.log.Debug("prices decoded", zap.String("file", a.PricesFile), zap.Int("symbols", len(prices)))
	return prices, nil
}

// warnUnpriced logs the open positions that could not be valued.
func (a *app) warnUnpriced(holdings []tradejournal.Holding) {
	for _, h := range holdings {
		if !h.Priced {
			a.log.Warn("no current price for open position", zap.String("symbol", h.Symbol))
		}
	}
}
