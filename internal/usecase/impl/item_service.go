package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService creates a new catalog service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

// CreateItem adds an active item at the end of the display order.
func (s *itemService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("item name is required")
	}
	if len(input.AssignedLocations) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one location is required")
	}

	namePersian := strings.TrimSpace(input.NamePersian)
	if namePersian == "" {
		namePersian = name
	}

	maxOrder, err := s.itemRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read display order")
	}

	now := time.Now()
	item := &entity.Item{
		ID:                uuid.Must(uuid.NewV7()),
		Name:              name,
		NamePersian:       namePersian,
		DisplayOrder:      maxOrder + 1,
		AssignedLocations: input.AssignedLocations,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	s.log(ctx).Info("Catalog item created", slog.String("item_id", item.ID.String()), slog.Int("display_order", item.DisplayOrder))

	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, id)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, domainerrors.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item name is required")
		}
		item.Name = name
	}
	if input.NamePersian != nil {
		item.NamePersian = strings.TrimSpace(*input.NamePersian)
		if item.NamePersian == "" {
			item.NamePersian = item.Name
		}
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}
	if input.AssignedLocations != nil {
		if len(input.AssignedLocations) == 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one location is required")
		}
		item.AssignedLocations = input.AssignedLocations
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	return item, nil
}

// DeleteItem hard-deletes the item. Placed orders keep their snapshots.
func (s *itemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to delete item")
	}

	s.log(ctx).Info("Catalog item deleted", slog.String("item_id", id.String()))

	return nil
}

func (s *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := s.itemRepo.ListItems(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

func (s *itemService) Catalog(ctx context.Context, location entity.Location, search string) ([]*entity.Item, error) {
	if !location.IsBranch() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location must be North York or Thornhill")
	}

	items, err := s.itemRepo.ListItems(ctx, repository.ItemFilter{
		ActiveOnly: true,
		Search:     strings.TrimSpace(search),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	offered := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.AvailableAt(location) {
			offered = append(offered, item)
		}
	}

	return offered, nil
}

func (s *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
