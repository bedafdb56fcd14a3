package postgres

import (
	"context"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (repo *settingsRepository) FindSettings(ctx context.Context, id string) (*entity.NotificationSettings, error) {
	var settingsM model.NotificationSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// UpsertSettings writes the singleton row, updating every mutable column on conflict.
func (repo *settingsRepository) UpsertSettings(ctx context.Context, settings *entity.NotificationSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone_numbers",
				"email_addresses",
				"sms_enabled",
				"email_enabled",
				"push_enabled",
				"updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save notification settings")
	}

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.NotificationSettingsModel) *entity.NotificationSettings {
	if data == nil {
		return nil
	}

	return &entity.NotificationSettings{
		ID:             data.ID,
		PhoneNumbers:   append([]string{}, data.PhoneNumbers...),
		EmailAddresses: append([]string{}, data.EmailAddresses...),
		SMSEnabled:     data.SMSEnabled,
		EmailEnabled:   data.EmailEnabled,
		PushEnabled:    data.PushEnabled,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.NotificationSettings) *model.NotificationSettingsModel {
	if data == nil {
		return nil
	}

	return &model.NotificationSettingsModel{
		ID:             data.ID,
		PhoneNumbers:   append([]string{}, data.PhoneNumbers...),
		EmailAddresses: append([]string{}, data.EmailAddresses...),
		SMSEnabled:     data.SMSEnabled,
		EmailEnabled:   data.EmailEnabled,
		PushEnabled:    data.PushEnabled,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
