package logger

import (
	"context"

	"github.com/google/uuid"
)

type loggerKey struct{}

type scopeKey struct{}

// scope identifies the request a context belongs to and the user whose
// tasks it is handling.
type scope struct {
	requestID string
	userID    string
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// WithRequestID stores the request ID in ctx, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	s := scopeFrom(ctx)
	s.requestID = requestID
	return context.WithValue(ctx, scopeKey{}, s)
}

func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithUserID stores the authenticated user in ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	s := scopeFrom(ctx)
	s.userID = userID
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithLogger stores l as the request-scoped logger
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Ctx returns the request-scoped logger (or the default one) tagged with the
// request and user IDs carried by ctx.
func Ctx(ctx context.Context) Logger {
	l, ok := ctx.Value(loggerKey{}).(Logger)
	if !ok {
		l = Default()
	}

	s := scopeFrom(ctx)
	var fields []Field
	if s.requestID != "" {
		fields = append(fields, String("request_id", s.requestID))
	}
	if s.userID != "" {
		fields = append(fields, String("user_id", s.userID))
	}
	return l.With(fields...)
}
