// Package logging attaches a zerolog logger to a context.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gitmind/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer   io.Writer
	RepoRoot string
	Level    zerolog.Level
}

// New creates a new context with a logger attached.
// For production: provide fs and leave Writer nil for rotating file logging.
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("repo", config.RepoRoot).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context.
// Returns a disabled logger if none is attached.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// SetGlobal makes the context logger the global zerolog logger, which
// context-free code such as the commit parser writes to.
func SetGlobal(ctx context.Context) {
	log.Logger = *Get(ctx)
}

// LevelFor maps the verbose flag to a log level.
func LevelFor(verbose bool) zerolog.Level {
	if verbose {
		return DebugLevel
	}
	return InfoLevel
}
