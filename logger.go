package vecunits

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecunits-specific context.
// This provides structured logging with consistent field names.
//
// The arithmetic core never logs. Logger is used by the batch and codec
// packages.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithCompression adds a compression field to the logger.
func (l *Logger) WithCompression(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("compression", name),
	}
}

// LogEvaluate logs a batch materialization.
func (l *Logger) LogEvaluate(ctx context.Context, count, chunks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluate failed",
			"count", count,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluate completed",
			"count", count,
			"chunks", chunks,
		)
	}
}

// LogEncode logs a record frame encoding.
func (l *Logger) LogEncode(ctx context.Context, records, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"records", records,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"records", records,
			"bytes", bytes,
		)
	}
}

// LogDecode logs a record frame decoding.
func (l *Logger) LogDecode(ctx context.Context, records, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"records", records,
			"bytes", bytes,
		)
	}
}
