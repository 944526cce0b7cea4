package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type State string

const (
	StateActive   State = "active"
	StateExpired  State = "expired"
	StateRejected State = "rejected"
)

// Change describes one auth-state transition seen by the server.
type Change struct {
	State  State
	UserID uuid.UUID
	Reason string
	At     time.Time
}

type Observer func(Change)

// Registry fans auth-state changes out to subscribers.
type Registry struct {
	mu        sync.RWMutex
	nextID    int
	observers map[int]Observer
}

func NewRegistry() *Registry {
	return &Registry{observers: make(map[int]Observer)}
}

// Subscribe registers o and returns a function that removes it.
func (r *Registry) Subscribe(o Observer) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.observers[id] = o
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

func (r *Registry) Notify(c Change) {
	if c.At.IsZero() {
		c.At = time.Now()
	}
	r.mu.RLock()
	observers := make([]Observer, 0, len(r.observers))
	for _, o := range r.observers {
		observers = append(observers, o)
	}
	r.mu.RUnlock()

	for _, o := range observers {
		o(c)
	}
}

// Tracker reports StateActive the first time a token is seen, until the token expires.
type Tracker struct {
	registry *Registry
	seen     *cache.Cache
}

func NewTracker(registry *Registry) *Tracker {
	return &Tracker{
		registry: registry,
		seen:     cache.New(time.Hour, 10*time.Minute),
	}
}

func (t *Tracker) Registry() *Registry {
	return t.registry
}

func (t *Tracker) Seen(s *Session) {
	ttl := cache.DefaultExpiration
	if !s.ExpiresAt.IsZero() {
		ttl = time.Until(s.ExpiresAt)
		if ttl <= 0 {
			return
		}
	}
	if err := t.seen.Add(s.Token, s.UserID, ttl); err != nil {
		return // already active
	}
	t.registry.Notify(Change{State: StateActive, UserID: s.UserID})
}

func (t *Tracker) Expired(userID uuid.UUID, token string) {
	t.seen.Delete(token)
	t.registry.Notify(Change{State: StateExpired, UserID: userID, Reason: "token expired"})
}

func (t *Tracker) Rejected(reason string) {
	t.registry.Notify(Change{State: StateRejected, Reason: reason})
}
