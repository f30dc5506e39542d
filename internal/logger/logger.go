// Package logger carries a per-request ID through context so every log line
// emitted while serving one request can be correlated. Handlers and services
// never build loggers themselves; they call FromContext and get the default
// slog logger, request-tagged when the middleware has stamped the context.
package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// GenerateRequestID returns a fresh UUID. The logging middleware calls this
// once per request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID stamps the request ID onto the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext reports the stamped request ID, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns the default logger, with a request_id attribute when
// the context carries one. Safe on a bare context.Background().
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With("request_id", id)
	}
	return slog.Default()
}
