// Command tb replays trading scenarios and prints their position reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradebook/cmd"
	"github.com/etnz/tradebook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"v": predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"demo": {
			Flags: map[string]complete.Predictor{
				"seed":   predict.Nothing,
				"format": predict.Set(cmd.Formats),
			},
		},
		"report": {
			Flags: map[string]complete.Predictor{
				"scenario": predict.Files("*.yaml"),
				"by":       predict.Set(cmd.CategoryNames()),
				"quotes":   predict.Files("*.json"),
				"path":     predict.Something,
				"format":   predict.Set(cmd.Formats),
			},
		},
		"instrument": {
			Flags: map[string]complete.Predictor{
				"scenario": predict.Files("*.yaml"),
				"format":   predict.Set{"text", "markdown"},
			},
		},
		"topic": {
			Args: topics(),
		},
		"help":     {},
		"flags":    {},
		"commands": {},
	},
}

// topics predicts documentation topic names.
func topics() complete.Predictor {
	names, err := docs.Names()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(names, docs.Index))
}

func main() {
	// completion exits when the shell is asking for completions.
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging(*cmd.Verbose)
	os.Exit(int(commander.Execute(context.Background())))
}
