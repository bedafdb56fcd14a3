package usecase

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one requested item in an inline cart.
type OrderLineInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// PlaceOrderInput is a cart sent by a client that keeps it locally.
type PlaceOrderInput struct {
	Location  entity.Location
	OrderDate time.Time
	Lines     []OrderLineInput
	StaffNote string
}

// OrderListFilter narrows the admin order listing.
type OrderListFilter struct {
	Location entity.Location
	Status   entity.OrderStatus
	From     *time.Time
	To       *time.Time
}

// OrderExport is a rendered spreadsheet ready to be downloaded.
type OrderExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// OrderUsecase covers order submission and the order management views.
type OrderUsecase interface {
	// SubmitOrder persists the cart as a new Active order together with its order.created event.
	SubmitOrder(ctx context.Context, actor *Actor, cart *entity.Cart) (*entity.Order, error)
	// Checkout submits the caller's stored cart and clears it once the order is saved.
	Checkout(ctx context.Context, actor *Actor, staffNote string) (*entity.Order, error)
	// PlaceOrder resolves an inline cart against the catalog and submits it.
	PlaceOrder(ctx context.Context, actor *Actor, input *PlaceOrderInput) (*entity.Order, error)

	ListOrders(ctx context.Context, filter OrderListFilter) ([]*entity.Order, error)
	ListMyOrders(ctx context.Context, actor *Actor) ([]*entity.Order, error)
	GetOrder(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Order, error)
	CompleteOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// VoidOrder hard-deletes the order. Staff may only void their own.
	VoidOrder(ctx context.Context, actor *Actor, id uuid.UUID) error

	ExportOrders(ctx context.Context, filter OrderListFilter) (*OrderExport, error)
	OrderTicketQR(ctx context.Context, id uuid.UUID) ([]byte, error)
	// CompleteOrderByTicket completes the order encoded in a scanned ticket.
	CompleteOrderByTicket(ctx context.Context, qrData string) (*entity.Order, error)
	ListOrderDeliveries(ctx context.Context, id uuid.UUID) ([]*entity.NotificationDelivery, error)
}
