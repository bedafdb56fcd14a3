package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewSettingsService creates a new notification settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*entity.NotificationSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, constants.SettingsSingletonID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.DefaultNotificationSettings(constants.SettingsSingletonID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification settings")
	}

	return settings, nil
}

// SaveSettings drops blank slots and upserts the singleton row, so repeated saves update in place.
func (s *settingsService) SaveSettings(ctx context.Context, input *usecase.SaveSettingsInput) (*entity.NotificationSettings, error) {
	if len(input.PhoneNumbers) > constants.MaxNotificationRecipients ||
		len(input.EmailAddresses) > constants.MaxNotificationRecipients {
		return nil, domainerrors.ErrTooManyRecipients
	}

	settings := &entity.NotificationSettings{
		ID:             constants.SettingsSingletonID,
		PhoneNumbers:   entity.CompactRecipients(input.PhoneNumbers),
		EmailAddresses: entity.CompactRecipients(input.EmailAddresses),
		SMSEnabled:     input.SMSEnabled,
		EmailEnabled:   input.EmailEnabled,
		PushEnabled:    input.PushEnabled,
		UpdatedAt:      time.Now(),
	}

	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save notification settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Notification settings saved",
		slog.Int("phone_numbers", len(settings.PhoneNumbers)),
		slog.Int("email_addresses", len(settings.EmailAddresses)),
		slog.Bool("sms_enabled", settings.SMSEnabled),
		slog.Bool("email_enabled", settings.EmailEnabled),
		slog.Bool("push_enabled", settings.PushEnabled),
	)

	return settings, nil
}
