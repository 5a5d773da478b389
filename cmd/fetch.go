package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch raw observations from the egg price feed" }
func (*fetchCmd) Usage() string {
	return `ew fetch

  Fetches the raw price observations from the upstream feed and prints
  them as received, one per line. Useful to inspect what the feed serves
  before any fallback or averaging applies.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := newFeed().Raw()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching from feed: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Year\tPeriod\tPrice\tLabel")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%.4f\t%s\n", r.Year, r.Period, r.Value, r.MonthLabel)
	}
	w.Flush()

	fmt.Printf("%d observations.\n", len(records))
	return subcommands.ExitSuccess
}
