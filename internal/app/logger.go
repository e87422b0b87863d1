package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/config"
)

// NewLogger builds the diagnostics logger. It writes to stderr so it never
// mixes with list output on stdout.
func NewLogger(cfg *config.Config) (zerolog.Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	w := out
	switch cfg.Env {
	case config.EnvDev, config.EnvProd:
	case config.EnvLocal:
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		cw.Out = out
		cw.NoColor = cfg.NoColor
		w = cw
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", cfg.Env)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger(), nil
}
