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

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display egg worth across the decades" }
func (*historyCmd) Usage() string {
	return `ew history [<amount>]

  Displays how many eggs the amount would have bought at each year's egg
  price, from 1950 to today. Defaults to a yearly income of $50,000.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount := eggworth.DefaultIncome
	if f.NArg() > 0 {
		a, err := eggworth.ParseAmount(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
			return subcommands.ExitUsageError
		}
		amount = a
	}

	samples, advisory := newFeed().Historical()
	if advisory != "" {
		fmt.Fprintln(os.Stderr, advisory)
	}

	points := eggworth.BuildSeries(amount, samples)
	printMarkdown(renderer.HistoryMarkdown(amount, points))
	return subcommands.ExitSuccess
}
