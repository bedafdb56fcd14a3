package entity

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a domain event written in the same transaction as its aggregate
// and later handed to the event publisher by the relay.
type OutboxEvent struct {
	ID          uuid.UUID
	AggregateID uuid.UUID  // The order the event is about.
	EventType   string     // e.g. order.created
	Payload     []byte     // JSON body delivered to consumers.
	Attempts    int        // Failed publish attempts so far.
	LastError   string     // Error of the latest failed attempt.
	CreatedAt   time.Time
	PublishedAt *time.Time // Nil until a publish succeeds.
}
