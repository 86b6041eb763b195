package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// New builds a timestamped logger writing JSON, or console output when format
// is "human". Unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if strings.EqualFold(format, FormatHuman) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339Nano}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Init builds a logger with New and installs it as the global logger.
func Init(level, format string, w io.Writer) zerolog.Logger {
	logger := New(level, format, w)
	log.Logger = logger
	return logger
}
