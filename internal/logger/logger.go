// Package logger builds the service's zerolog logger from configuration.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/Shivanand-hulikatti/party-events/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to stdout.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter returns a timestamped logger writing to w. Format "console"
// selects zerolog's human-readable writer; anything else is JSON.
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "party-events").
		Logger()
}
