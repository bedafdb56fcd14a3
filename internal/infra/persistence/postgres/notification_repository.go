package postgres

import (
	"context"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const deliveryBatchSize = 100

// notificationDeliveryRepository implements the repository.NotificationDeliveryRepository interface.
type notificationDeliveryRepository struct {
	db *gorm.DB
}

// NewNotificationDeliveryRepository is the constructor for notificationDeliveryRepository.
func NewNotificationDeliveryRepository(db *gorm.DB) repository.NotificationDeliveryRepository {
	return &notificationDeliveryRepository{
		db: db,
	}
}

// BatchCreateDeliveries persists the outcome of one notifier run.
func (repo *notificationDeliveryRepository) BatchCreateDeliveries(ctx context.Context, deliveries []*entity.NotificationDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	deliveryModels := make([]*model.NotificationDeliveryModel, 0, len(deliveries))
	for _, delivery := range deliveries {
		deliveryModels = append(deliveryModels, fromDeliveryDomain(delivery))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(deliveryModels, deliveryBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record notification deliveries")
	}

	for i, deliveryM := range deliveryModels {
		deliveries[i].ID = deliveryM.ID
	}

	return nil
}

func (repo *notificationDeliveryRepository) ListDeliveriesByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.NotificationDelivery, error) {
	var deliveryModels []*model.NotificationDeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("sent_at ASC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notification deliveries")
	}

	deliveries := make([]*entity.NotificationDelivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, &entity.NotificationDelivery{
			ID:                deliveryM.ID,
			OrderID:           deliveryM.OrderID,
			Channel:           entity.NotificationChannel(deliveryM.Channel),
			Recipient:         deliveryM.Recipient,
			Status:            deliveryM.Status,
			ProviderMessageID: deliveryM.ProviderMessageID,
			ErrorMessage:      deliveryM.ErrorMessage,
			SentAt:            deliveryM.SentAt,
		})
	}

	return deliveries, nil
}

func fromDeliveryDomain(data *entity.NotificationDelivery) *model.NotificationDeliveryModel {
	return &model.NotificationDeliveryModel{
		ID:                data.ID,
		OrderID:           data.OrderID,
		Channel:           string(data.Channel),
		Recipient:         data.Recipient,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorMessage:      data.ErrorMessage,
		SentAt:            data.SentAt,
	}
}
