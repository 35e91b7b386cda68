package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradejournal/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `tj topic [<topic>...]

  Show documentation for the given topics, '*' for all of them. Without
  topic, shows the introduction and the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		if index, err := topicIndex(); err == nil {
			fmt.Fprint(os.Stderr, index)
		}
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// topicIndex lists the available topics with their title.
func topicIndex() (string, error) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Available topics:\n")
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  %-12s %s\n", topic, title)
	}
	return b.String(), nil
}
