package logger

import (
	"context"

	"github.com/google/uuid"
)

type (
	loggerKey        struct{}
	correlationIDKey struct{}
)

// NewCorrelationID returns a fresh identifier for one CLI invocation or TUI
// session.
func NewCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID attaches id to ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID extracts the correlation ID from ctx, or "" when unset.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContext stores l in ctx. When ctx already carries a correlation ID the
// stored logger is enriched with it.
func WithContext(ctx context.Context, l *Logger) context.Context {
	if id := CorrelationID(ctx); id != "" {
		l = l.With("correlation_id", id)
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*Logger); ok && l != nil {
			return l
		}
	}
	return Nop()
}
