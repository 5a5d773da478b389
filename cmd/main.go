// Package cmd implements the CLI application to convert money into eggs.
package cmd

import (
	"flag"

	"github.com/etnz/eggworth"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&worthCmd{}, "conversion")
	c.Register(&historyCmd{}, "conversion")
	c.Register(&richestCmd{}, "conversion")

	c.Register(&fetchCmd{}, "feed")
	c.Register(&serveCmd{}, "feed")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&AssistCmd{}, "documentation")
}

// Names lists the registered subcommand names, for shell completion.
func Names() []string {
	return []string{"worth", "history", "richest", "fetch", "serve", "topic", "assist"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var feedURL = flag.String("feed-url", "", "Base URL of the egg price feed (defaults to $EGG_FEED_URL)")

// newFeed is the central function to open the price feed.
func newFeed() *eggworth.Feed {
	feed := eggworth.NewFeed()
	if *feedURL != "" {
		feed.BaseURL = *feedURL
	}
	return feed
}
