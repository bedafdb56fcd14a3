package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationDeliveryRepository records the outcome of each order alert.
type NotificationDeliveryRepository interface {
	BatchCreateDeliveries(ctx context.Context, deliveries []*entity.NotificationDelivery) error
	ListDeliveriesByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.NotificationDelivery, error)
}
