package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// createFile is a test seam for the export destination.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// Opener builds the App for a command. Each command owns the App it opens
// and closes it before returning.
type Opener func(ctx context.Context) (*App, error)

// Commands returns the top-level finboard commands.
func Commands(open Opener) []subcommands.Command {
	return []subcommands.Command{
		&shellCmd{open: open},
		&importCmd{open: open},
		&exportCmd{open: open},
	}
}

// Register adds the finboard commands to commander along with the builtin
// help, flags and commands commands.
func Register(commander *subcommands.Commander, open Opener) {
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range Commands(open) {
		commander.Register(c, "")
	}
}

type shellCmd struct {
	open Opener
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive dashboard (default)" }
func (*shellCmd) Usage() string {
	return `finboard shell

  Starts an interactive prompt to sign up, log in and manage bank accounts.
  Type 'help' at the prompt for the list of commands.
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	app.Run(ctx)
	return subcommands.ExitSuccess
}

type importCmd struct {
	open  Opener
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import users, accounts and settings from a JSON dump" }
func (*importCmd) Usage() string {
	return `finboard import [-i <file>]

  Reads a JSON object keyed by storage key (users, bankAccounts,
  userSettings_<name>) and adds the records that are not stored yet.
  Reads standard input when -i is not given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "-", "The dump file to read, or - for standard input.")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.input != "-" {
		f, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		r = f
	}

	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if err := app.Import(ctx, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	open   Opener
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all stored data as a JSON dump" }
func (*exportCmd) Usage() string {
	return `finboard export [-o <file>]

  Writes users, accounts and settings in the layout 'import' reads.
  Writes to standard output when -o is not given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "The file to write, or - for standard output.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if c.output == "-" {
		if err := app.Export(ctx, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := exportToFile(ctx, app, c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// exportToFile writes the dump to path. A failed close is an export failure.
func exportToFile(ctx context.Context, app *App, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := app.Export(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
