package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger.
// APP_ENV=dev (or development) uses a human-friendly console writer;
// LOG_LEVEL overrides the default info level.
func NewLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	level := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lv != zerolog.NoLevel {
		level = lv
	}
	return l.Level(level)
}
