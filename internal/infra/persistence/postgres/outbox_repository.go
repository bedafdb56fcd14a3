package postgres

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxLastErrorLength = 1000

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

func (repo *outboxRepository) CreateEvent(ctx context.Context, event *entity.OutboxEvent) error {
	eventM := &model.OutboxEventModel{
		ID:          event.ID,
		AggregateID: event.AggregateID,
		EventType:   event.EventType,
		Payload:     datatypes.JSON(event.Payload),
		Attempts:    event.Attempts,
		LastError:   event.LastError,
		CreatedAt:   event.CreatedAt,
		PublishedAt: event.PublishedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create outbox event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// LockPendingEvents must run inside a transaction for the row locks to hold.
func (repo *outboxRepository) LockPendingEvents(ctx context.Context, limit, maxAttempts int) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("published_at IS NULL AND attempts < ?", maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock pending outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.OutboxEvent{
			ID:          eventM.ID,
			AggregateID: eventM.AggregateID,
			EventType:   eventM.EventType,
			Payload:     []byte(eventM.Payload),
			Attempts:    eventM.Attempts,
			LastError:   eventM.LastError,
			CreatedAt:   eventM.CreatedAt,
			PublishedAt: eventM.PublishedAt,
		})
	}

	return events, nil
}

func (repo *outboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"published_at": publishedAt,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbox event published")
	}

	return nil
}

func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	if len(errMsg) > maxLastErrorLength {
		errMsg = errMsg[:maxLastErrorLength]
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": errMsg,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbox event failed")
	}

	return nil
}
