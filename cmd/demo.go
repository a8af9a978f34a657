package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tradebook/scenario"
	"github.com/google/subcommands"
)

// demoCmd holds the flags for the 'demo' subcommand.
type demoCmd struct {
	seed   int64
	format string
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "replay the built-in trading demo" }
func (*demoCmd) Usage() string {
	return `tb demo [-seed <n>] [-format text|markdown|json]

  Records a few trades on ABB, Volvo and a Volvo call option, lets prices
  walk randomly for a few days, and prints the positions report after each
  leap, then grouped by every category.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.seed, "seed", 0, "seed of the random price walk, 0 picks one from the clock")
	f.StringVar(&c.format, "format", "text", "output format: text, markdown or json")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validFormat(c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Msg("demo")

	if _, err := scenario.Demo(seed).Run(dayPrinter(stdout, c.format)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
