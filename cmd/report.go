package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/scenario"
	"github.com/google/subcommands"
)

// quotePaths collects repeated -path name=jsonpath flags.
type quotePaths tradebook.Quotes

func (q *quotePaths) String() string {
	if q == nil {
		return ""
	}
	return tradebook.Quotes(*q).String()
}

func (q *quotePaths) Set(v string) error {
	name, path, ok := strings.Cut(v, "=")
	if !ok || name == "" || path == "" {
		return fmt.Errorf("%w: want <instrument>=<jsonpath>, got %q", tradebook.ErrValidation, v)
	}
	if *q == nil {
		*q = make(quotePaths)
	}
	(*q)[name] = path
	return nil
}

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	scenario string
	by       string
	quotes   string
	paths    quotePaths
	format   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "replay a scenario file and print its reports" }
func (*reportCmd) Usage() string {
	return `tb report -scenario <file.yaml> [-by <category>] [-quotes <file|url> -path <instrument>=<jsonpath>...] [-format text|markdown|json]

  Replays the scenario and prints every report it asks for.

  With -by, the scenario reports are not printed: a single report of the
  final ledger grouped by the category is printed instead.
  With -quotes, market prices are read from a JSON document before the
  final report, one -path per instrument.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "scenario file (YAML)")
	f.StringVar(&c.by, "by", "", "category of the final report: "+strings.Join(CategoryNames(), ", "))
	f.StringVar(&c.quotes, "quotes", "", "JSON document (file or http url) to read final market prices from")
	f.Var(&c.paths, "path", "jsonpath of an instrument price in the quotes document, as <instrument>=<jsonpath> (repeatable)")
	f.StringVar(&c.format, "format", "text", "output format: text, markdown or json")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scenario == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario is required")
		return subcommands.ExitUsageError
	}
	if !validFormat(c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if (c.quotes == "") != (len(c.paths) == 0) {
		fmt.Fprintln(os.Stderr, "Error: -quotes and -path go together")
		return subcommands.ExitUsageError
	}
	final := c.by != "" || c.quotes != ""
	by := tradebook.ByPortfolio
	if c.by != "" {
		var err error
		if by, err = tradebook.ParseCategory(c.by); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := scenario.Load(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug().Str("scenario", filepath.Base(c.scenario)).Int("steps", len(s.Steps)).Msg("loaded")

	var report scenario.ReportFunc
	if !final {
		report = dayPrinter(stdout, c.format)
	}
	book, err := s.Run(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario %q: %v\n", c.scenario, err)
		return subcommands.ExitFailure
	}
	if !final {
		return subcommands.ExitSuccess
	}

	if c.quotes != "" {
		doc, err := tradebook.LoadQuotes(scenario.Client, c.quotes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := tradebook.Quotes(c.paths).Apply(doc, book.Instruments); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying quotes: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	r, err := book.Ledger.GroupBy(by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := dayPrinter(stdout, c.format)(strconv.Itoa(book.Day), r); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// CategoryNames lists the accepted values of the -by flag.
func CategoryNames() []string {
	var names []string
	for _, c := range tradebook.Categories() {
		names = append(names, c.String())
	}
	return names
}
