// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel identifies how an order alert was sent.
type NotificationChannel string

const (
	ChannelSMS   NotificationChannel = "sms"
	ChannelEmail NotificationChannel = "email"
	ChannelPush  NotificationChannel = "push"
)

// Delivery statuses
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// NotificationDelivery records one attempt to alert a recipient about an order.
type NotificationDelivery struct {
	ID                uuid.UUID           `json:"id"`
	OrderID           uuid.UUID           `json:"orderId"`
	Channel           NotificationChannel `json:"channel"`
	Recipient         string              `json:"recipient"`         // Phone number, comma-joined emails, or device token prefix.
	Status            string              `json:"status"`            // sent or failed.
	ProviderMessageID string              `json:"providerMessageId"` // Twilio SID, email id or FCM message id when known.
	ErrorMessage      string              `json:"errorMessage,omitempty"`
	SentAt            time.Time           `json:"sentAt"`
}
