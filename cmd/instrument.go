package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/etnz/tradebook/scenario"
	"github.com/google/subcommands"
)

// instrumentCmd holds the flags for the 'instrument' subcommand.
type instrumentCmd struct {
	scenario string
	format   string
}

func (*instrumentCmd) Name() string     { return "instrument" }
func (*instrumentCmd) Synopsis() string { return "describe the instruments of a scenario" }
func (*instrumentCmd) Usage() string {
	return `tb instrument -scenario <file.yaml> [-format text|markdown]

  Replays the scenario and prints the description of every instrument, with
  its last price.
`
}

func (c *instrumentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "scenario file (YAML)")
	f.StringVar(&c.format, "format", "text", "output format: text or markdown")
}

func (c *instrumentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scenario == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario is required")
		return subcommands.ExitUsageError
	}
	if c.format != "text" && c.format != "markdown" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	s, err := scenario.Load(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	book, err := s.Run(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario %q: %v\n", c.scenario, err)
		return subcommands.ExitFailure
	}

	insts := make([]*tradebook.Instrument, 0, len(book.Names))
	for _, name := range book.Names {
		insts = append(insts, book.Instrument(name))
	}
	if c.format == "markdown" {
		if err := printMarkdown(stdout, renderer.InstrumentsMarkdown(insts)); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing instruments: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for i, inst := range insts {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, inst)
	}
	return subcommands.ExitSuccess
}
