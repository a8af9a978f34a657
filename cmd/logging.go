package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger = log.Logger

// SetupLogging configures the application logger: human readable on stderr,
// debug level when verbose, warnings only otherwise.
func SetupLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
