package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Outbox publish results reported to metrics
const (
	relayResultPublished = "published"
	relayResultFailed    = "failed"
	relayResultDropped   = "dropped"
)

type outboxRelayService struct {
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	metrics     service.MetricsRecorder
	batchSize   int
	maxAttempts int
	logger      *slog.Logger
}

// OutboxRelayServiceParams holds dependencies for OutboxRelayService, injected by Fx.
type OutboxRelayServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewOutboxRelayService creates the relay that drains the order event outbox
func NewOutboxRelayService(params OutboxRelayServiceParams) usecase.OutboxRelayUsecase {
	return &outboxRelayService{
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		batchSize:   params.Config.Outbox.BatchSize,
		maxAttempts: params.Config.Outbox.MaxAttempts,
		logger:      params.Logger,
	}
}

// RelayPending locks one batch of unpublished events, publishes them in creation order and records
// each outcome inside the same transaction. Rows locked by another relay are skipped.
func (s *outboxRelayService) RelayPending(ctx context.Context) (int, error) {
	published := 0

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		outboxRepo := repoFactory.NewOutboxRepository()

		events, err := outboxRepo.LockPendingEvents(ctx, s.batchSize, s.maxAttempts)
		if err != nil {
			return errors.Wrap(err, "failed to lock pending events")
		}

		for _, event := range events {
			if pubErr := s.publish(ctx, event); pubErr != nil {
				s.metrics.OutboxPublished(relayResultFailed)
				s.logFailure(event, pubErr)

				if err := outboxRepo.MarkFailed(ctx, event.ID, pubErr.Error()); err != nil {
					return errors.Wrap(err, "failed to record publish failure")
				}

				continue
			}

			if err := outboxRepo.MarkPublished(ctx, event.ID, time.Now()); err != nil {
				return errors.Wrap(err, "failed to mark event published")
			}

			s.metrics.OutboxPublished(relayResultPublished)
			published++
		}

		return nil
	})
	if err != nil {
		return published, errors.Wrap(err, "failed to relay outbox events")
	}

	return published, nil
}

func (s *outboxRelayService) publish(ctx context.Context, event *entity.OutboxEvent) error {
	var orderEvent service.OrderEvent
	if err := json.Unmarshal(event.Payload, &orderEvent); err != nil {
		return errors.Wrap(err, "failed to decode outbox payload")
	}

	return errors.Wrap(s.publisher.PublishOrderEvent(ctx, &orderEvent), "failed to publish order event")
}

func (s *outboxRelayService) logFailure(event *entity.OutboxEvent, err error) {
	attempts := event.Attempts + 1
	attrs := []any{
		slog.String("event_id", event.ID.String()),
		slog.String("aggregate_id", event.AggregateID.String()),
		slog.Int("attempts", attempts),
		slog.Any("error", err),
	}

	if attempts >= s.maxAttempts {
		s.metrics.OutboxPublished(relayResultDropped)
		s.logger.Error("Outbox event exhausted its publish attempts and will be skipped", attrs...)

		return
	}

	s.logger.Warn("Outbox event publish failed, will retry", attrs...)
}
