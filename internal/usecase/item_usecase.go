package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateItemInput defines the data required to add a catalog item.
type CreateItemInput struct {
	Name              string
	NamePersian       string
	AssignedLocations entity.Locations
}

// UpdateItemInput holds the fields an admin may change. Nil means unchanged.
type UpdateItemInput struct {
	Name              *string
	NamePersian       *string
	DisplayOrder      *int
	AssignedLocations entity.Locations
	IsActive          *bool
}

// ItemUsecase defines catalog management and the staff catalog view.
type ItemUsecase interface {
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	// ListItems returns every item sorted by display order.
	ListItems(ctx context.Context) ([]*entity.Item, error)
	// Catalog returns the active items offered at location, optionally filtered by name.
	Catalog(ctx context.Context, location entity.Location, search string) ([]*entity.Item, error)
}
