package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDeliveryModel is the GORM-specific struct for the 'notification_deliveries' table.
// It represents one attempt to alert a recipient about an order.
type NotificationDeliveryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel           string    `gorm:"type:varchar(10);not null"`
	Recipient         string    `gorm:"type:text;not null"`
	Status            string    `gorm:"type:text;not null;default:'sent'"`
	ProviderMessageID string    `gorm:"type:text"`
	ErrorMessage      string    `gorm:"type:text"`
	SentAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationDeliveryModel) TableName() string {
	return "notification_deliveries"
}
