// Package logger provides structured logging configuration on top of log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// Logger wraps slog.Logger so callers depend on one local type.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Writer io.Writer
	Format string // "json" or "text"
	Level  slog.Level
}

// New creates a new logger with the given configuration.
//
// The JSON format is intended for machine consumption, the text format
// for terminals. An unrecognized format falls back to text.
//
// Example:
//
//	log := logger.New(logger.Config{
//	    Format: "text",
//	    Level:  logger.ParseLevel("debug"),
//	})
//	log.Info("catalog fetched", "records", 12)
func New(cfg Config) *Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == formatJSON {
		handler = slog.NewJSONHandler(cfg.Writer, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Writer, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Discard returns a logger that drops every record.
//
// The TUI uses this so pipeline log output does not corrupt the
// alternate screen; progress events carry the messages instead.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel converts a string to slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
