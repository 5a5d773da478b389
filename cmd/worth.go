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

// worthCmd holds the flags for the 'worth' subcommand.
type worthCmd struct {
	price string
}

func (*worthCmd) Name() string     { return "worth" }
func (*worthCmd) Synopsis() string { return "convert a dollar amount into eggs" }
func (*worthCmd) Usage() string {
	return `ew worth [-p <price>] [<amount>]

  Converts a dollar amount into the number of whole eggs it buys at the
  current egg price. Defaults to a yearly income of $50,000.
`
}

func (c *worthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "per-egg price override (defaults to the feed's current price)")
}

func (c *worthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount := eggworth.DefaultIncome
	if f.NArg() > 0 {
		a, err := eggworth.ParseAmount(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
			return subcommands.ExitUsageError
		}
		amount = a
	}

	price, on, advisory := c.unitPrice()
	if advisory != "" {
		fmt.Fprintln(os.Stderr, advisory)
	}

	eggs, err := eggworth.EggsFor(amount, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WorthMarkdown(amount, price, on, eggs))
	return subcommands.ExitSuccess
}

// unitPrice resolves the per-egg price, honoring the -p override.
func (c *worthCmd) unitPrice() (price eggworth.Amount, asOf string, advisory string) {
	if c.price != "" {
		p, err := eggworth.ParseAmount(c.price)
		if err == nil && p.IsPositive() {
			return p, "", ""
		}
		advisory = fmt.Sprintf("ignoring invalid price override %q", c.price)
	}
	price, on, adv := newFeed().Current()
	if advisory == "" {
		advisory = adv
	}
	if !on.IsZero() {
		asOf = on.Label()
	}
	return price, asOf, advisory
}
