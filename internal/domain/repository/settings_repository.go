package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned before the first save.
var ErrSettingsNotFound = errors.New("notification settings not found")

// SettingsRepository persists the keyed notification settings singleton.
type SettingsRepository interface {
	FindSettings(ctx context.Context, id string) (*entity.NotificationSettings, error)

	// UpsertSettings inserts the row or updates it in place when the ID exists.
	UpsertSettings(ctx context.Context, settings *entity.NotificationSettings) error
}
