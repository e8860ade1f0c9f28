package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger writes human readable lines to w. verbose enables debug events.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
	})).With().
		Timestamp().
		Logger().
		Level(level)
}
