package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the caller identity resolved from a verified bearer token.
// It is passed explicitly into collection and matching calls.
type Session struct {
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
