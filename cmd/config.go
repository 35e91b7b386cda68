package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tradejournal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvTradesFile = "TJ_TRADES_FILE"
	EnvPricesFile = "TJ_PRICES_FILE"
	EnvCurrency   = "TJ_CURRENCY"
	EnvLogLevel   = "TJ_LOG_LEVEL"
)

// Config holds the settings shared by all commands.
type Config struct {
	TradesFile string `yaml:"trades_file"`
	PricesFile string `yaml:"prices_file"`
	PricesPath string `yaml:"prices_path"`
	Currency   string `yaml:"currency"`
	TagOrder   string `yaml:"tag_order"`
	Strict     bool   `yaml:"strict"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		TradesFile: "trades.jsonl",
		Currency:   "KRW",
		TagOrder:   tradejournal.ByCount.String(),
		LogLevel:   "warn",
	}
}

// Load reads a YAML configuration file over c. Keys missing from the file
// keep their current value, and a missing file is not an error.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("could not decode config file %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with the environment variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvTradesFile); ok && v != "" {
		c.TradesFile = v
	}
	if v, ok := lookup(EnvPricesFile); ok && v != "" {
		c.PricesFile = v
	}
	if v, ok := lookup(EnvCurrency); ok && v != "" {
		c.Currency = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// ApplyFlags overrides c with the global flags explicitly set in fs.
func (c *Config) ApplyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "trades-file":
			c.TradesFile = v
		case "prices-file":
			c.PricesFile = v
		case "prices-path":
			c.PricesPath = v
		case "currency":
			c.Currency = v
		case "v":
			if verbose, _ := strconv.ParseBool(v); verbose {
				c.LogLevel = "debug"
			}
		}
	})
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	var errs error
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		errs = errors.Join(errs, errors.New("currency cannot be empty"))
	}
	if c.TradesFile == "" {
		errs = errors.Join(errs, errors.New("trades file cannot be empty"))
	}
	if _, err := tradejournal.ParseTagOrder(c.TagOrder); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid log level: %w", err))
	}
	return errs
}

// Settings resolves the configuration of this run: flags override the
// environment, which overrides the configuration file, which overrides the
// defaults.
func Settings() (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Load(*configFile); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.ApplyFlags(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
