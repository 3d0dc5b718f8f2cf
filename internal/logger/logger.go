package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/candlepulse/config"
)

var (
	out  io.Writer = os.Stdout
	base           = newLogger(config.LogConfig{Level: "info"}, out)
)

// Init configures the global logger from cfg. Call it once on startup,
// before any request is served.
//
// Level accepts debug|info|warn|error (default info). Pretty switches
// from JSON lines to zerolog's console writer.
func Init(cfg config.LogConfig) {
	base = newLogger(cfg, out)
}

// L returns the global logger. It logs JSON at info level until Init is called.
func L() *zerolog.Logger {
	return &base
}

func newLogger(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(cfg.Level))
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
