package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eggworth"
	"github.com/etnz/eggworth/renderer"
	"github.com/google/subcommands"
)

// richestCmd holds the flags for the 'richest' subcommand.
type richestCmd struct {
	limit  int
	offset int
}

func (*richestCmd) Name() string     { return "richest" }
func (*richestCmd) Synopsis() string { return "display the rich list measured in eggs" }
func (*richestCmd) Usage() string {
	return `ew richest [-n <limit>] [-skip <offset>]

  Displays the wealthiest people with their net worth converted into eggs
  at the current egg price.
`
}

func (c *richestCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "maximum number of entries to display (all by default)")
	f.IntVar(&c.offset, "skip", 0, "number of entries to skip")
}

func (c *richestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, _, advisory := newFeed().Current()
	if advisory != "" {
		fmt.Fprintln(os.Stderr, advisory)
	}

	page, total := eggworth.DefaultRoster().List(c.limit, c.offset)
	if len(page) == 0 {
		fmt.Printf("No entries at offset %d (total %d).\n", c.offset, total)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RichestMarkdown(page, price))
	return subcommands.ExitSuccess
}
