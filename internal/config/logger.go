package config

import (
	"io"
	"log/slog"
)

type LoggerFormat string

const (
	LoggerFormatText LoggerFormat = "text"
	LoggerFormatJSON LoggerFormat = "json"
)

type Logger struct {
	Level     slog.Level   `env:"LEVEL,expand" envDefault:"info"`
	Format    LoggerFormat `env:"FORMAT,expand" envDefault:"text"`
	AddSource bool         `env:"ADD_SOURCE,expand" envDefault:"true"`
}

// Handler returns the slog handler writing to w in the configured format.
// Unknown formats fall back to text.
func (l Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     l.Level,
		AddSource: l.AddSource,
	}

	if l.Format == LoggerFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}
