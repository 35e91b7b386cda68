package cmd

import (
	"flag"

	"github.com/etnz/tradejournal/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors knows the values of some flags, other flags get no
// prediction.
var flagPredictors = map[string]complete.Predictor{
	"config":      predict.Files("*.yaml"),
	"trades-file": predict.Files("*.jsonl"),
	"prices-file": predict.Files("*.json"),
	"currency":    predict.Set{"KRW", "USD", "EUR", "JPY", "GBP"},
	"bucket":      predict.Set{"daily", "monthly"},
	"sort":        predict.Set{"count", "pnl", "winrate", "name"},
	"o":           predict.Files("*.jsonl"),
}

// Completion returns the shell completion of tj: its subcommands and the
// flags each of them defines.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, g := range groups() {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(fs)}
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := flagPredictors[f.Name]
		if !ok {
			p = predict.Nothing
		}
		// boolean flags take no value.
		if b, isBool := f.Value.(interface{ IsBoolFlag() bool }); isBool && b.IsBoolFlag() {
			p = nil
		}
		flags[f.Name] = p
	})
	return flags
}
