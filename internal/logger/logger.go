package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger in development and a JSON logger otherwise.
// level overrides the environment default when it parses.
func New(environment, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl := zerolog.InfoLevel
	var log zerolog.Logger
	switch strings.ToLower(environment) {
	case "development", "local":
		lvl = zerolog.DebugLevel
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	default:
		log = zerolog.New(os.Stdout)
	}

	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}
	return log.Level(lvl).With().Timestamp().Str("service", "quickquote").Logger()
}
