package blobseek

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with blobseek-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithName adds a name field to the logger (useful for telling handles apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogRead logs a read operation. Reaching the end of the handle is not an error.
func (l *Logger) LogRead(offset uint64, requested, n int, err error) {
	if err != nil && !errors.Is(err, io.EOF) {
		l.Error("read failed",
			"offset", offset,
			"requested", requested,
			"error", err,
		)
		return
	}
	l.Debug("read completed",
		"offset", offset,
		"requested", requested,
		"read", n,
		"eof", err != nil,
	)
}

// LogSeek logs a seek operation.
func (l *Logger) LogSeek(target string, pos uint64, err error) {
	if err != nil {
		l.Error("seek failed",
			"target", target,
			"error", err,
		)
		return
	}
	l.Debug("seek completed",
		"target", target,
		"position", pos,
	)
}

// LogSize logs a size query.
func (l *Logger) LogSize(reported float64, size uint64, err error) {
	if err != nil {
		l.Error("size rejected",
			"reported", reported,
			"error", err,
		)
		return
	}
	l.Debug("size resolved",
		"size", size,
	)
}
