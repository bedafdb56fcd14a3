package usecase

import "context"

// OutboxRelayUsecase moves committed outbox events to the event publisher.
type OutboxRelayUsecase interface {
	// RelayPending publishes one batch and returns how many events were published.
	RelayPending(ctx context.Context) (int, error)
}
