// Package logger provides the structured logging interface used across the
// application, backed by log/slog.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the leveled logging interface handed to the SDK and the
// command layer. Arguments follow slog's alternating key/value convention.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger discards all log messages. Used in tests and when logging is
// disabled entirely.
type NoopLogger struct{}

func (l NoopLogger) Debug(msg string, args ...any) {}
func (l NoopLogger) Info(msg string, args ...any)  {}
func (l NoopLogger) Warn(msg string, args ...any)  {}
func (l NoopLogger) Error(msg string, args ...any) {}

// SlogLogger adapts a slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger writing text output to stderr at the
// given level.
func NewSlogLogger(level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(handler)}
}

// NewDefaultLogger returns a Debug-level logger when debug is set and an
// Info-level logger otherwise.
func NewDefaultLogger(debug bool) Logger {
	if debug {
		return NewSlogLogger(slog.LevelDebug)
	}
	return NewSlogLogger(slog.LevelInfo)
}

func (l *SlogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *SlogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
