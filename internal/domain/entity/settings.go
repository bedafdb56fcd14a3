package entity

import (
	"strings"
	"time"
)

// NotificationSettings holds the admin-managed notification channels and recipients.
// Only one row exists, keyed by a fixed ID.
type NotificationSettings struct {
	ID             string    `json:"-"`
	PhoneNumbers   []string  `json:"phoneNumbers"`
	EmailAddresses []string  `json:"emailAddresses"`
	SMSEnabled     bool      `json:"smsEnabled"`
	EmailEnabled   bool      `json:"emailEnabled"`
	PushEnabled    bool      `json:"pushEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DefaultNotificationSettings is what readers see before the first save.
func DefaultNotificationSettings(id string) *NotificationSettings {
	return &NotificationSettings{
		ID:             id,
		PhoneNumbers:   []string{},
		EmailAddresses: []string{},
	}
}

// SMSRecipients returns the non-blank phone numbers when SMS is on.
func (s *NotificationSettings) SMSRecipients() []string {
	if !s.SMSEnabled {
		return nil
	}

	return CompactRecipients(s.PhoneNumbers)
}

// EmailRecipients returns the non-blank addresses when email is on.
func (s *NotificationSettings) EmailRecipients() []string {
	if !s.EmailEnabled {
		return nil
	}

	return CompactRecipients(s.EmailAddresses)
}

// CompactRecipients trims every entry and drops the blank ones, keeping order.
func CompactRecipients(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
