package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/finboard/internal/client/cli"
	"github.com/dmitrijs2005/finboard/internal/client/config"
	"github.com/dmitrijs2005/finboard/internal/flagx"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	fs := flag.NewFlagSet("finboard", flag.ExitOnError)
	commander := subcommands.NewCommander(fs, "finboard")
	cli.Register(commander, func(ctx context.Context) (*cli.App, error) {
		return cli.NewApp(ctx, cfg, log)
	})

	// Configuration flags were consumed above; the rest selects a command.
	args := flagx.StripArgs(os.Args[1:], config.FlagNames)
	if len(args) == 0 {
		args = []string{"shell"}
	}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(int(commander.Execute(context.Background())))
}
