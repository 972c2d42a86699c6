package clusterkit

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clusterkit-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogRun logs a single clustering run.
func (l *Logger) LogRun(ctx context.Context, k, iterations int, converged bool, wcss float64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"k", k,
			"iterations", iterations,
			"converged", converged,
			"wcss", wcss,
			"duration", duration,
		)
	}
}

// LogSweep logs a K sweep.
func (l *Logger) LogSweep(ctx context.Context, kmin, kmax, runs int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"kmin", kmin,
			"kmax", kmax,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"kmin", kmin,
			"kmax", kmax,
			"runs", runs,
			"duration", duration,
		)
	}
}

// LogSave logs an analysis save.
func (l *Logger) LogSave(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "analysis saved",
			"name", name,
			"bytes", size,
		)
	}
}

// LogLoad logs an analysis load.
func (l *Logger) LogLoad(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "analysis loaded",
			"name", name,
		)
	}
}
