package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Local runs get a console writer,
// everything else writes JSON lines to stderr.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "courseadmin").Logger()

	if env == "" || env == "local" || env == "development" {
		return logger.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}

	return logger.Level(zerolog.InfoLevel)
}
