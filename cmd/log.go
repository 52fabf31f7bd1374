package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging sends human readable logs to stderr. verbose forces the debug
// level.
func SetupLogging(level string, verbose bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	log.Logger = log.Logger.Level(lvl)
}

func logger(component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}
