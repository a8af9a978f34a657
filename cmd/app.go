// Package cmd implements the tb command line application, that replays
// trading scenarios and prints their position reports.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "scenarios")
	c.Register(&reportCmd{}, "scenarios")
	c.Register(&instrumentCmd{}, "scenarios")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables debug logs on stderr.
var Verbose = flag.Bool("v", false, "verbose logging")

// stdout is where reports are written.
var stdout io.Writer = os.Stdout

// Formats lists the accepted values of the -format flags.
var Formats = []string{"text", "markdown", "json"}

// printReport writes r to w in the given format.
func printReport(w io.Writer, format string, r *tradebook.Report) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, renderer.Text(r))
		return err
	case "markdown":
		return printMarkdown(w, renderer.Markdown(r))
	case "json":
		data, err := renderer.JSON(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	return fmt.Errorf("%w: unknown format %q", tradebook.ErrValidation, format)
}

// validFormat reports whether format is one of Formats.
func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// dayPrinter returns a scenario report function that prints each report
// preceded by its day.
func dayPrinter(w io.Writer, format string) func(day string, r *tradebook.Report) error {
	return func(day string, r *tradebook.Report) error {
		logger.Debug().Str("day", day).Stringer("by", r.Category).Int("groups", len(r.Groups)).Msg("report")
		if format != "json" {
			fmt.Fprintf(w, "Day: %s\n", day)
		}
		return printReport(w, format, r)
	}
}
