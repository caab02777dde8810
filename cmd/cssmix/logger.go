package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger on stderr so stdout stays clean for
// generated CSS and JSON reports.
func newLogger(verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05",
		Level:           level,
		Prefix:          "cssmix",
	})
	return logger
}
