// Package logging builds the zerolog logger shared across the application.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"alcyxob/exercise-tracker/internal/config"
)

// New constructs a logger from the logging section of the configuration.
// Unknown levels fall back to info; format "console" switches to the
// human-readable writer, anything else emits JSON.
func New(cfg config.LoggingConfig) zerolog.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit output writer, used by tests.
func NewWithOutput(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
