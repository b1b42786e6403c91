package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level string    // debug, info, warn, error; defaults to warn
	Out   io.Writer // defaults to os.Stderr
	JSON  bool      // structured output instead of console formatting
}

// New creates a logger. Output never goes to stdout, which carries the
// converted ledger.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
