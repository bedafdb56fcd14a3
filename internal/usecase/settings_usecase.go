package usecase

import (
	"context"

	"kitchen/internal/domain/entity"
)

// SaveSettingsInput is the full settings form. Blank entries are dropped before saving.
type SaveSettingsInput struct {
	PhoneNumbers   []string
	EmailAddresses []string
	SMSEnabled     bool
	EmailEnabled   bool
	PushEnabled    bool
}

// SettingsUsecase reads and writes the notification settings singleton.
type SettingsUsecase interface {
	// GetSettings returns the stored settings or the defaults when none were saved yet.
	GetSettings(ctx context.Context) (*entity.NotificationSettings, error)
	SaveSettings(ctx context.Context, input *SaveSettingsInput) (*entity.NotificationSettings, error)
}
