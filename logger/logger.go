package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_DEBUG = "DEBUG"
	LOG_LEVEL_INFO  = "INFO"
	LOG_LEVEL_WARN  = "WARN"
	LOG_LEVEL_ERROR = "ERROR"
)

const levelEnv = "NEWSMUNGER_LOGLEVEL"

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// NewLogger returns a JSON logger to stderr for the component.
func NewLogger(component string) zerolog.Logger {
	return New(os.Stderr, component)
}

func New(w io.Writer, component string) zerolog.Logger {
	level, ok := os.LookupEnv(levelEnv)
	if !ok {
		level = LOG_LEVEL_INFO
	}

	return zerolog.New(w).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(Level(level))
}

// Level maps a level name to its zerolog level. Unknown names are Info.
func Level(name string) zerolog.Level {
	switch name {
	case LOG_LEVEL_DEBUG:
		return zerolog.DebugLevel
	case LOG_LEVEL_WARN:
		return zerolog.WarnLevel
	case LOG_LEVEL_ERROR:
		return zerolog.ErrorLevel
	}

	return zerolog.InfoLevel
}
