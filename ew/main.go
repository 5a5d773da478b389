package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/eggworth/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion: exits by itself when invoked by the shell.
	sub := make(map[string]*complete.Command)
	for _, n := range cmd.Names() {
		sub[n] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
