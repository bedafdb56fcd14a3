package service

import "kitchen/internal/domain/entity"

// MetricsRecorder receives counters from the order and notification flows.
type MetricsRecorder interface {
	OrderPlaced(location entity.Location)
	NotificationSent(channel entity.NotificationChannel, status string)
	OutboxPublished(result string)
}
