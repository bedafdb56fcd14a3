// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrItemNotFound is returned when a catalog item does not exist.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter narrows catalog listings.
type ItemFilter struct {
	ActiveOnly bool
	// Search matches name or Persian name, case-insensitive.
	Search string
}

// ItemRepository defines catalog persistence. Listings are sorted by display order.
type ItemRepository interface {
	CreateItem(ctx context.Context, item *entity.Item) error
	UpdateItem(ctx context.Context, item *entity.Item) error

	// DeleteItem hard-deletes an item. Orders keep their own snapshots.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)

	// MaxDisplayOrder returns the largest display order, or 0 for an empty catalog.
	MaxDisplayOrder(ctx context.Context) (int, error)
	CountItems(ctx context.Context) (int64, error)
}
