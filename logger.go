package meshkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with meshkit-specific context.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// WithPath adds a blob name or file path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogPairwise logs a pairwise point computation.
func (l *Logger) LogPairwise(ctx context.Context, op string, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"points", points,
		)
	}
}

// LogCharges logs a topological charge count.
func (l *Logger) LogCharges(ctx context.Context, samples, found, total int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "charge count failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "charge count completed",
			"samples", samples,
			"charges", found,
			"total", total,
		)
	}
}

// LogIO logs a table read or write.
func (l *Logger) LogIO(ctx context.Context, op, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table "+op+" failed",
			"path", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table "+op+" completed",
			"path", name,
			"rows", rows,
		)
	}
}
