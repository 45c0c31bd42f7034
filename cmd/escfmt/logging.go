package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns the diagnostics logger. Output is human readable and
// coloured only when w is a terminal. Unknown or empty levels fall back to
// warn.
func newLogger(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	lvl := zerolog.WarnLevel
	if trimmed := strings.ToLower(strings.TrimSpace(level)); trimmed != "" {
		if parsed, err := zerolog.ParseLevel(trimmed); err == nil && parsed != zerolog.NoLevel {
			lvl = parsed
		}
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
