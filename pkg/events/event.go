package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the contract every published domain event satisfies.
// Payload carries the pre-serialized JSON body written to the broker.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte
}

// BaseEvent implements DomainEvent and is embedded by concrete events.
// Fields are private so serializing a concrete event exposes only its own
// public fields, not the envelope.
type BaseEvent struct {
	id            uuid.UUID
	eventType     string
	aggregateID   uuid.UUID
	aggregateType string
	occurredAt    time.Time
	payload       []byte
}

// NewBaseEvent builds an event envelope with a fresh ID and UTC timestamp.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
		payload:       payload,
	}
}

// EventID returns the event's unique identifier.
func (e BaseEvent) EventID() uuid.UUID { return e.id }

// EventType returns the event's type name.
func (e BaseEvent) EventType() string { return e.eventType }

// AggregateID returns the ID of the aggregate that produced the event.
func (e BaseEvent) AggregateID() uuid.UUID { return e.aggregateID }

// AggregateType returns the type name of the producing aggregate.
func (e BaseEvent) AggregateType() string { return e.aggregateType }

// OccurredAt returns when the event was recorded.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// Payload returns the serialized event body.
func (e BaseEvent) Payload() []byte { return e.payload }
