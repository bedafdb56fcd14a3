package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminDeviceModel is the GORM-specific struct for the 'admin_devices' table.
// (user_id, device_id) is unique so re-registering a device updates it in place.
type AdminDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_devices_user_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_admin_devices_user_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminDeviceModel) TableName() string {
	return "admin_devices"
}
