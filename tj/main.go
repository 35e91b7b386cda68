// Command tj reports positions and realized P&L of a trade journal.
//
// Run 'tj help' for the list of commands, and 'tj topic' for the manual.
// Shell completion is installed with COMP_INSTALL=1 tj.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/tradejournal/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env holds GEMINI_API_KEY and TJ_* overrides, it is optional.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "tj")
	cmd.Register(commander)
	cmd.Completion().Complete("tj")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
