package service

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"
)

// OrderEvent is the message handed to the notification worker after an order commits.
// It carries the full order so the worker does not need to read it back.
type OrderEvent struct {
	RequestID  string        `json:"requestId,omitempty"` // For distributed tracing
	EventID    string        `json:"eventId"`
	EventType  string        `json:"eventType"`
	Order      *entity.Order `json:"order"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
