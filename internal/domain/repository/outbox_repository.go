package repository

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository stores domain events until the relay publishes them.
type OutboxRepository interface {
	CreateEvent(ctx context.Context, event *entity.OutboxEvent) error

	// LockPendingEvents returns unpublished events under maxAttempts, oldest first,
	// locking them for the surrounding transaction and skipping rows other relays hold.
	LockPendingEvents(ctx context.Context, limit, maxAttempts int) ([]*entity.OutboxEvent, error)

	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}
