// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminDevice is a device an admin registered for order push alerts.
type AdminDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`   // Owner of the device.
	FCMToken  string    `json:"fcmToken"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"deviceId"` // Client-generated identifier, unique per user.
	Platform  string    `json:"platform"` // ios, android or web.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
