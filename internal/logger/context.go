package logger

import (
	"context"

	zap "go.uber.org/zap"
)

type ctxLoggerKey struct{}

// ContextWithLogger attaches a logger to the context
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContext retrieves the logger from context, falling back to the global logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok {
		return l
	}
	return current().Desugar()
}

// L is a shorthand for FromContext
func L(ctx context.Context) *zap.Logger {
	return FromContext(ctx)
}

// With creates a child context whose logger carries the extra fields
func With(ctx context.Context, fields ...zap.Field) context.Context {
	return ContextWithLogger(ctx, FromContext(ctx).With(fields...))
}

// WithClient tags the context logger with a pointer channel client id
func WithClient(ctx context.Context, clientID string) context.Context {
	return With(ctx, zap.String("client_id", clientID))
}
