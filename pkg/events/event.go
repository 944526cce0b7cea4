package events

import (
	"context"
	"time"
)

const (
	TypeWineScanned            = "wine.scanned"
	TypeCollectionEntryAdded   = "wine.collection.added"
	TypeCollectionEntryRemoved = "wine.collection.removed"
)

// Event is anything published on the domain bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type nopPublisher struct{}

// NewNopPublisher drops every event. Used when the broker is not reachable.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error {
	return nil
}
