package service

import "context"

// NotificationService delivers push alerts to admin devices.
type NotificationService interface {
	// SendBatchNotification multicasts one alert. invalidTokens lists tokens the provider
	// reported as unregistered so callers can deactivate their devices.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
