package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the structured logger used across the service. LOG_FORMAT
// console switches to the human-readable writer for local work.
func New(level string) zerolog.Logger {
	lvl := parseLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		return zerolog.New(output).With().Timestamp().
			Str("service", "loomwear").Logger().Level(lvl)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).With().Timestamp().
		Str("service", "loomwear").Logger().Level(lvl)
}

func parseLevel(value string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value))); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}
