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

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (repo *itemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) UpdateItem(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":               itemM.Name,
			"name_persian":       itemM.NamePersian,
			"display_order":      itemM.DisplayOrder,
			"assigned_locations": itemM.AssignedLocations,
			"is_active":          itemM.IsActive,
			"updated_at":         item.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func (repo *itemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func (repo *itemRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

func (repo *itemRepository) FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error) {
	if len(ids) == 0 {
		return []*entity.Item{}, nil
	}

	var itemModels []*model.ItemModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("display_order ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by IDs")
	}

	return toItemDomains(itemModels), nil
}

// ListItems returns catalog items in display order.
func (repo *itemRepository) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).Model(&model.ItemModel{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("(name ILIKE ? OR name_persian ILIKE ?)", pattern, pattern)
	}

	var itemModels []*model.ItemModel
	if err := query.
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return toItemDomains(itemModels), nil
}

func (repo *itemRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var maxOrder int

	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read max display order")
	}

	return maxOrder, nil
}

func (repo *itemRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count items")
	}

	return count, nil
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:                data.ID,
		Name:              data.Name,
		NamePersian:       data.NamePersian,
		DisplayOrder:      data.DisplayOrder,
		AssignedLocations: entity.LocationsFromStrings(data.AssignedLocations),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toItemDomains(items []*model.ItemModel) []*entity.Item {
	result := make([]*entity.Item, 0, len(items))
	for _, itemM := range items {
		result = append(result, toItemDomain(itemM))
	}

	return result
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:                data.ID,
		Name:              data.Name,
		NamePersian:       data.NamePersian,
		DisplayOrder:      data.DisplayOrder,
		AssignedLocations: data.AssignedLocations.ToStrings(),
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
