package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	orderNumberMin   = 10000
	orderNumberRange = 90000
)

type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	itemRepo     repository.ItemRepository
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	deliveryRepo repository.NotificationDeliveryRepository
	exporter     service.OrderExporter
	qrCodeSvc    service.QRCodeService
	metrics      service.MetricsRecorder
	logger       *slog.Logger

	orderNumber func() string
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	ItemRepo     repository.ItemRepository
	UserRepo     repository.UserRepository
	CartRepo     repository.CartRepository
	DeliveryRepo repository.NotificationDeliveryRepository
	Exporter     service.OrderExporter
	QRCodeSvc    service.QRCodeService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		itemRepo:     params.ItemRepo,
		userRepo:     params.UserRepo,
		cartRepo:     params.CartRepo,
		deliveryRepo: params.DeliveryRepo,
		exporter:     params.Exporter,
		qrCodeSvc:    params.QRCodeSvc,
		metrics:      params.Metrics,
		logger:       params.Logger,
		orderNumber:  generateOrderNumber,
		now:          time.Now,
	}
}

// generateOrderNumber returns five random digits. Collisions are possible and accepted.
func generateOrderNumber() string {
	//nolint:gosec // display number, not a secret
	return strconv.Itoa(orderNumberMin + rand.IntN(orderNumberRange))
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitOrder persists the cart as a new order and appends the order.created event in the same transaction.
func (s *orderService) SubmitOrder(ctx context.Context, actor *usecase.Actor, cart *entity.Cart) (*entity.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}
	if !cart.Location.IsBranch() || cart.OrderDate.IsZero() {
		return nil, domainerrors.ErrInvalidOrder
	}
	for _, line := range cart.Lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}
	}

	user, err := s.loadOrderingUser(ctx, actor, cart.Location)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &entity.Order{
		ID:           uuid.Must(uuid.NewV7()),
		OrderNumber:  s.orderNumber(),
		OrderDate:    dateOnly(cart.OrderDate),
		Location:     cart.Location,
		PlacedBy:     user.ID,
		PlacedByName: user.FullName,
		Items:        append([]entity.OrderItem(nil), cart.Lines...),
		StaffNote:    strings.TrimSpace(cart.StaffNote),
		Status:       entity.OrderStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	outboxEvent, err := newOrderCreatedEvent(ctx, order, now)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := repoFactory.NewOutboxRepository().CreateEvent(ctx, outboxEvent); err != nil {
			return errors.Wrap(err, "failed to append order event")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to submit order",
			slog.String("location", order.Location.String()),
			slog.Int("lines", len(order.Items)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute order submission transaction")
	}

	s.metrics.OrderPlaced(order.Location)
	s.log(ctx).Info("Order submitted",
		slog.String("order_id", order.ID.String()),
		slog.String("order_number", order.OrderNumber),
		slog.String("location", order.Location.String()),
	)

	return order, nil
}

func (s *orderService) loadOrderingUser(ctx context.Context, actor *usecase.Actor, location entity.Location) (*entity.User, error) {
	if actor == nil {
		return nil, domainerrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrForbidden.WrapMessage("unknown user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordering user")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("user is inactive")
	}
	if !user.CanOrderFor(location) {
		return nil, domainerrors.ErrForbidden.WrapMessage("user is not assigned to this location")
	}

	return user, nil
}

func newOrderCreatedEvent(ctx context.Context, order *entity.Order, now time.Time) (*entity.OutboxEvent, error) {
	eventID := uuid.Must(uuid.NewV7())

	payload, err := json.Marshal(&service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    eventID.String(),
		EventType:  constants.EventTypeOrderCreated,
		Order:      order,
		OccurredAt: now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order event")
	}

	return &entity.OutboxEvent{
		ID:          eventID,
		AggregateID: order.ID,
		EventType:   constants.EventTypeOrderCreated,
		Payload:     payload,
		CreatedAt:   now,
	}, nil
}

// dateOnly drops the time of day, keeping the calendar date the client picked.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Checkout submits the stored cart and clears it after the order is saved.
func (s *orderService) Checkout(ctx context.Context, actor *usecase.Actor, staffNote string) (*entity.Order, error) {
	cart, err := s.cartRepo.GetCart(ctx, actor.UserID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if note := strings.TrimSpace(staffNote); note != "" {
		cart.StaffNote = note
	}

	order, err := s.SubmitOrder(ctx, actor, cart)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteCart(ctx, actor.UserID); err != nil {
		s.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// PlaceOrder resolves inline lines against the catalog, merging repeated items.
func (s *orderService) PlaceOrder(ctx context.Context, actor *usecase.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}
	if !input.Location.IsBranch() || input.OrderDate.IsZero() {
		return nil, domainerrors.ErrInvalidOrder
	}

	ids := make([]uuid.UUID, 0, len(input.Lines))
	quantities := make(map[uuid.UUID]int, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}
		if _, seen := quantities[line.ItemID]; !seen {
			ids = append(ids, line.ItemID)
		}
		quantities[line.ItemID] += line.Quantity
	}

	items, err := s.itemRepo.FindItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered items")
	}

	byID := make(map[uuid.UUID]*entity.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	cart := entity.NewCart(actor.UserID)
	cart.Location = input.Location
	cart.OrderDate = input.OrderDate
	cart.StaffNote = input.StaffNote

	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrItemNotFound.WrapMessage(id.String())
		}
		if !item.AvailableAt(input.Location) {
			return nil, domainerrors.ErrItemUnavailable.WrapMessage(item.Name)
		}

		cart.Add(item, quantities[id])
	}

	return s.SubmitOrder(ctx, actor, cart)
}

func (s *orderService) ListOrders(ctx context.Context, filter usecase.OrderListFilter) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, repository.OrderFilter{
		Location: filter.Location,
		Status:   filter.Status,
		From:     filter.From,
		To:       filter.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, actor *usecase.Actor) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, repository.OrderFilter{PlacedBy: &actor.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own orders")
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && order.PlacedBy != actor.UserID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// CompleteOrder moves an Active order to Complete. Only status and updatedAt change.
func (s *orderService) CompleteOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.CanComplete() {
		return nil, domainerrors.ErrOrderNotActive.WrapMessage(order.Status.String())
	}

	now := s.now()
	if err := s.orderRepo.UpdateOrderStatus(ctx, id, entity.OrderStatusComplete, now); err != nil {
		return nil, errors.Wrap(err, "failed to complete order")
	}

	order.Status = entity.OrderStatusComplete
	order.UpdatedAt = now

	s.log(ctx).Info("Order completed", slog.String("order_id", id.String()), slog.String("order_number", order.OrderNumber))

	return order, nil
}

// VoidOrder hard-deletes the order.
func (s *orderService) VoidOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && order.PlacedBy != actor.UserID {
		return domainerrors.ErrForbidden.WrapMessage("only the submitter or an admin can void an order")
	}

	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to void order")
	}

	s.log(ctx).Info("Order voided", slog.String("order_id", id.String()), slog.String("voided_by", actor.UserID.String()))

	return nil
}

func (s *orderService) ExportOrders(ctx context.Context, filter usecase.OrderListFilter) (*usecase.OrderExport, error) {
	orders, err := s.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.exporter.ExportOrders(&buf, orders); err != nil {
		return nil, errors.Wrap(err, "failed to export orders")
	}

	return &usecase.OrderExport{
		FileName:    "orders-" + s.now().Format("20060102") + s.exporter.FileExtension(),
		ContentType: s.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func (s *orderService) OrderTicketQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GenerateOrderTicketQR(order.ID, order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order ticket")
	}

	return png, nil
}

func (s *orderService) CompleteOrderByTicket(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := s.qrCodeSvc.ParseOrderTicketQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage(err.Error())
	}

	return s.CompleteOrder(ctx, orderID)
}

func (s *orderService) ListOrderDeliveries(ctx context.Context, id uuid.UUID) ([]*entity.NotificationDelivery, error) {
	deliveries, err := s.deliveryRepo.ListDeliveriesByOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification deliveries")
	}

	return deliveries, nil
}

func (s *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
