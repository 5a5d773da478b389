package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/eggworth/server"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	port string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the egg worth HTTP API" }
func (*serveCmd) Usage() string {
	return `ew serve [-port <port>]

  Runs the HTTP API serving egg prices, conversions and the rich list.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "port to listen on (defaults to $SERVER_PORT or 8080)")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := server.Load()
	if c.port != "" {
		cfg.Port = c.port
	}
	if *feedURL != "" {
		cfg.FeedURL = *feedURL
	}

	if err := server.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
