package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr, zerolog.InfoLevel)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}
