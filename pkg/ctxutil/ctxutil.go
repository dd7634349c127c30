package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// Session identifies the authenticated caller of a request.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the session from the context.
// Returns false if the value is missing, has a nil user ID, or is of the wrong type.
func SessionFromCtx(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	if !ok || s.UserID == uuid.Nil {
		return Session{}, false
	}
	return s, true
}

// UserIDFromCtx returns the user ID of the session in ctx, if any.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	s, ok := SessionFromCtx(ctx)
	return s.UserID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
