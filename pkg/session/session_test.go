package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	assert.False(t, (&Session{}).Expired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Minute)}).Expired(now))
}

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := &Session{UserID: uuid.New()}
	got, ok := FromContext(WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}

type recorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *recorder) observe(c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.State
	}
	return out
}

func TestRegistry_SubscribeAndUnsubscribe(t *testing.T) {
	reg := NewRegistry()
	first, second := &recorder{}, &recorder{}

	unsubscribe := reg.Subscribe(first.observe)
	reg.Subscribe(second.observe)

	reg.Notify(Change{State: StateActive})
	unsubscribe()
	reg.Notify(Change{State: StateExpired})

	assert.Equal(t, []State{StateActive}, first.states())
	assert.Equal(t, []State{StateActive, StateExpired}, second.states())
	assert.False(t, second.changes[0].At.IsZero())
}

func TestTracker(t *testing.T) {
	reg := NewRegistry()
	rec := &recorder{}
	reg.Subscribe(rec.observe)
	tracker := NewTracker(reg)

	userID := uuid.New()
	s := &Session{UserID: userID, Token: "token-a", ExpiresAt: time.Now().Add(time.Hour)}

	tracker.Seen(s)
	tracker.Seen(s)
	assert.Equal(t, []State{StateActive}, rec.states(), "a token is announced once")

	tracker.Expired(userID, "token-a")
	tracker.Seen(s)
	tracker.Rejected("invalid token")

	assert.Equal(t, []State{StateActive, StateExpired, StateActive, StateRejected}, rec.states())
	assert.Equal(t, userID, rec.changes[1].UserID)
	assert.Equal(t, "invalid token", rec.changes[3].Reason)
}

func TestTracker_IgnoresAlreadyExpiredSession(t *testing.T) {
	reg := NewRegistry()
	rec := &recorder{}
	reg.Subscribe(rec.observe)

	NewTracker(reg).Seen(&Session{UserID: uuid.New(), Token: "old", ExpiresAt: time.Now().Add(-time.Second)})
	assert.Empty(t, rec.states())
}
