// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for admin device persistence.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.AdminDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AdminDevice, error)

	// FindDevicesByUser retrieves all devices for a user, including inactive ones.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdminDevice, error)

	// FindActiveAdminDevices retrieves active devices whose owner is an active admin.
	FindActiveAdminDevices(ctx context.Context) ([]*entity.AdminDevice, error)

	// UpdateFCMToken replaces the token and reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	DeactivateDevice(ctx context.Context, id uuid.UUID) error
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) error
}
