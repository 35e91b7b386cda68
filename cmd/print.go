package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// stdout receives the command output.
var stdout io.Writer = os.Stdout

// printMarkdown prints markdown to stdout, styled for the terminal unless -raw
// is set.
func printMarkdown(markdown string) {
	writeMarkdown(stdout, markdown, *rawOutput)
}

func writeMarkdown(w io.Writer, markdown string, raw bool) {
	if !raw {
		out, err := glamour.Render(markdown, "auto")
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, markdown)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// output prints v as JSON when -json is set, and the markdown otherwise.
func output(markdown func() string, v any) subcommands.ExitStatus {
	if *jsonOutput {
		if err := writeJSON(stdout, v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(markdown())
	return subcommands.ExitSuccess
}
