package usecase

import (
	"context"
	"time"

	"kitchen/internal/domain/service"
)

// NotifyItem is one line of a directly submitted order alert.
type NotifyItem struct {
	Name     string
	Quantity int
}

// OrderAlertInput carries the order fields rendered into a direct alert.
type OrderAlertInput struct {
	OrderNumber  string
	Location     string
	PlacedBy     string
	Items        []NotifyItem
	StaffNote    string
	DeliveryDate time.Time
}

// EmailAlertOutput reports how a direct email alert was handled.
type EmailAlertOutput struct {
	Message string
	EmailID string
}

// NotifyUsecase backs the direct notification endpoints.
type NotifyUsecase interface {
	SendOrderSMS(ctx context.Context, phoneNumber string, input *OrderAlertInput) (*service.SMSResult, error)
	SendOrderEmail(ctx context.Context, emailAddress string, input *OrderAlertInput) (*EmailAlertOutput, error)
	SendTestSMS(ctx context.Context, phoneNumber string) (*service.SMSResult, error)
	VerifySMSCredentials(ctx context.Context) (*service.SMSAccount, error)
}
