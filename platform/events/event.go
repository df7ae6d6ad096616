// Package events provides the in-process event bus the pipeline publishes
// resolution and quote events on. This is part of the platform layer and
// contains no business logic.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event.
type Event interface {
	// EventName uniquely identifies the event type, e.g. "quotes.quote.calculated".
	EventName() string
	// OccurredAt returns when the event was produced.
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by all events. Embed it and
// construct with NewBaseEvent.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a new event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler processes events it subscribed to. A handler receives every event
// published under its subscribed name and must type-switch on the concrete
// event itself.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers. Publish is
// fire-and-forget; PublishSync waits for every handler and reports their
// combined errors.
type Bus interface {
	Publish(ctx context.Context, event Event)
	PublishSync(ctx context.Context, event Event) error
	// Subscribe registers a handler under the name the event's EventName
	// method returns.
	Subscribe(eventName string, handler Handler)
}
