// Package logx is a thin leveled-logging facade over zerolog so callers
// never import the logging backend directly.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// SetLevel sets the global minimum level.
func SetLevel(level Level) {
	logger = logger.Level(level)
}

// UseJSON switches output to plain JSON lines, for non-interactive environments.
func UseJSON() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(logger.GetLevel())
}

func Debug(msg string) { logger.Debug().Msg(msg) }

func Debugf(format string, args ...any) { logger.Debug().Msgf(format, args...) }

func Info(msg string) { logger.Info().Msg(msg) }

func Infof(format string, args ...any) { logger.Info().Msgf(format, args...) }

func Warn(msg string) { logger.Warn().Msg(msg) }

func Warnf(format string, args ...any) { logger.Warn().Msgf(format, args...) }

func Error(msg string) { logger.Error().Msg(msg) }

func Errorf(format string, args ...any) { logger.Error().Msgf(format, args...) }

func Fatalf(format string, args ...any) { logger.Fatal().Msgf(format, args...) }
