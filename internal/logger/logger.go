// Package logger provides the structured logging abstraction used across the
// mood tracker backend. Handlers and services log through the Logger
// interface; the slog backend is the only implementation.
package logger

import (
	"io"
	"strings"
	"time"
)

// Level represents log severity levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a key-value pair attached to a log entry
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err records err under the "error" key; a nil error logs as null
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the logging interface used by handlers, services and middleware
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that adds fields to every entry
	With(fields ...Field) Logger
}

// Config holds logging configuration
type Config struct {
	Level Level
	// Format is "json" or "text"
	Format string
	// Output defaults to os.Stdout
	Output io.Writer
}

var defaultLogger Logger

// Default returns the logger installed by Setup, or an info-level JSON logger
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = NewSlogLogger(Config{Level: LevelInfo, Format: "json"})
	}
	return defaultLogger
}

// Setup builds a logger from level and format names and installs it as the default
func Setup(level, format string) Logger {
	if format == "" {
		format = "json"
	}
	defaultLogger = NewSlogLogger(Config{Level: ParseLevel(level), Format: format})
	return defaultLogger
}

// Discard returns a logger that drops everything, for tests
func Discard() Logger {
	return NewSlogLogger(Config{Level: LevelError, Format: "text", Output: io.Discard})
}
