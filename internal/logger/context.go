package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestLoggerKey struct{}

// ContextWithLogger returns ctx carrying l as the request logger.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, requestLoggerKey{}, l)
}

// FromContext returns the request logger, or a no-op logger outside a request.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(requestLoggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// WithFields returns ctx whose request logger carries fields. Without a
// request logger ctx is returned unchanged.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	l, ok := ctx.Value(requestLoggerKey{}).(*zap.Logger)
	if !ok || l == nil || len(fields) == 0 {
		return ctx
	}
	return ContextWithLogger(ctx, l.With(fields...))
}
