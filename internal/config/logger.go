package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Log levels and formats accepted by --log-level and --log-format.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatPlain = "plain"
	FormatJSON  = "json"
)

// ParseLevel maps a --log-level value to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo, "":
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, level)
	}
}

// NewLogger builds the logger described by c, writing to w.
func NewLogger(w io.Writer, c Config) (zerolog.Logger, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch c.LogFormat {
	case FormatJSON:
	case FormatPlain, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
