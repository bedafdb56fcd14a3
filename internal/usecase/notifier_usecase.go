package usecase

import (
	"context"

	"kitchen/internal/domain/service"
)

// OrderNotifierUsecase alerts admins about a newly created order.
type OrderNotifierUsecase interface {
	// HandleOrderCreated dispatches SMS, email and push for the order in event.
	// Only a retryable error asks the broker for redelivery; channel failures are logged and swallowed.
	HandleOrderCreated(ctx context.Context, event *service.OrderEvent) error
}
