// Package context carries request-scoped values (request ID, logger, caller) between
// the delivery layer and the code it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

type (
	requestIDKey struct{}
	loggerKey    struct{}
	userIDKey    struct{}
)

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns "" when no request ID is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithUserID records the authenticated caller. A request logger already on ctx
// is re-scoped so later log lines carry the user ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	if logger := GetLoggerOrDefault(ctx, nil); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}

	return ctx
}

// GetUserIDFromContext returns the caller set by WithUserID.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)

	return id, ok
}
