package repository

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Zero values mean no restriction.
type OrderFilter struct {
	PlacedBy *uuid.UUID
	Location entity.Location
	Status   entity.OrderStatus
	From     *time.Time // inclusive lower bound on delivery date
	To       *time.Time // exclusive upper bound on delivery date
}

// OrderRepository defines order persistence. Listings are newest first.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus changes only status and updated_at.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error

	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
