package logger

import (
	"log/slog"
	"time"
)

// LogRequest logs an API request.
func LogRequest(method, path string, status int, duration time.Duration) {
	attrs := []any{
		slog.String("type", string(TypeAPI)),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("took", duration),
	}

	if status >= 500 {
		slog.Error("Request failed", attrs...)
	} else {
		slog.Info("Request handled", attrs...)
	}
}

// LogQuery logs database operations.
func LogQuery(operation string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", string(TypeDB)),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Debug("Query executed", attrs...)
	}
}

// LogSystem logs system events.
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", string(TypeSystem))}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events.
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", string(TypeError)),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
