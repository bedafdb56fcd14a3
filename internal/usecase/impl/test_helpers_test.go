package impl

import (
	"io"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			IdentityProvider: "local",
			BcryptCost:       4,
		},
		Notifier: &config.NotifierConfig{
			TimeZone:       "America/Toronto",
			SMSConcurrency: 2,
			Signature:      "Kitchen Team",
		},
		Outbox: &config.OutboxConfig{
			Enabled:     true,
			Interval:    time.Second,
			BatchSize:   10,
			MaxAttempts: 3,
		},
		Catalog: &config.CatalogConfig{},
	}
}

func staffActor(locations ...entity.Location) *usecase.Actor {
	return &usecase.Actor{
		UserID:    uuid.New(),
		Email:     "staff@example.com",
		Role:      entity.RoleStaff,
		Locations: locations,
	}
}

func adminActor() *usecase.Actor {
	return &usecase.Actor{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
	}
}

func testItem(name string, locations ...entity.Location) *entity.Item {
	return &entity.Item{
		ID:                uuid.New(),
		Name:              name,
		NamePersian:       name,
		AssignedLocations: locations,
		IsActive:          true,
	}
}

func deliveryDate() time.Time {
	return time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
}
