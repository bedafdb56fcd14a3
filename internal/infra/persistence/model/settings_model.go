package model

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationSettingsModel mirrors the 'notification_settings' table, keyed by a fixed singleton ID.
type NotificationSettingsModel struct {
	ID             string                      `gorm:"type:varchar(32);primaryKey"`
	PhoneNumbers   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	EmailAddresses datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	SMSEnabled     bool                        `gorm:"column:sms_enabled;not null;default:false"`
	EmailEnabled   bool                        `gorm:"not null;default:false"`
	PushEnabled    bool                        `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}
