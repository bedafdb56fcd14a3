package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"testing"
	"time"

	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	mockRepo "kitchen/internal/mocks/repository"
	mockSvc "kitchen/internal/mocks/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      *orderService
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	itemRepo     *mockRepo.MockItemRepository
	userRepo     *mockRepo.MockUserRepository
	cartRepo     *mockRepo.MockCartRepository
	deliveryRepo *mockRepo.MockNotificationDeliveryRepository
	exporter     *mockSvc.MockOrderExporter
	qrCodeSvc    *mockSvc.MockQRCodeService
	metrics      *mockSvc.MockMetricsRecorder
	now          time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		itemRepo:     mockRepo.NewMockItemRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		deliveryRepo: mockRepo.NewMockNotificationDeliveryRepository(t),
		exporter:     mockSvc.NewMockOrderExporter(t),
		qrCodeSvc:    mockSvc.NewMockQRCodeService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
		now:          time.Date(2025, time.January, 5, 18, 30, 0, 0, time.UTC),
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager:    fx.txManager,
		OrderRepo:    fx.orderRepo,
		ItemRepo:     fx.itemRepo,
		UserRepo:     fx.userRepo,
		CartRepo:     fx.cartRepo,
		DeliveryRepo: fx.deliveryRepo,
		Exporter:     fx.exporter,
		QRCodeSvc:    fx.qrCodeSvc,
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	}).(*orderService)
	svc.orderNumber = func() string { return "12345" }
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

// expectSubmitTx runs the transaction body against fresh repository mocks and captures what was written.
func (fx orderServiceFixtures) expectSubmitTx(t *testing.T, created **entity.Order, event **entity.OutboxEvent) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(_ context.Context, order *entity.Order) { *created = order }).
				Return(nil)

			mockOutboxRepo.EXPECT().
				CreateEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
				Run(func(_ context.Context, e *entity.OutboxEvent) { *event = e }).
				Return(nil)

			return fn(mockFactory)
		})
}

func activeStaffUser(actor *usecase.Actor) *entity.User {
	return &entity.User{
		ID:                actor.UserID,
		Email:             actor.Email,
		FullName:          "Sara Staff",
		Role:              actor.Role,
		AssignedLocations: actor.Locations,
		IsActive:          true,
	}
}

func filledCart(owner uuid.UUID, location entity.Location, items ...*entity.Item) *entity.Cart {
	cart := entity.NewCart(owner)
	cart.Location = location
	cart.OrderDate = deliveryDate()
	for i, item := range items {
		cart.Add(item, i+2)
	}

	return cart
}

func TestOrderService_SubmitOrder_WritesOrderAndEvent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	rice := testItem("Rice", entity.LocationBoth)
	stew := testItem("Stew", entity.LocationNorthYork)
	cart := filledCart(actor.UserID, entity.LocationNorthYork, rice, stew)
	cart.StaffNote = "  extra spicy  "

	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	var created *entity.Order
	var event *entity.OutboxEvent
	fx.expectSubmitTx(t, &created, &event)
	fx.metrics.EXPECT().OrderPlaced(entity.LocationNorthYork).Return()

	order, err := fx.service.SubmitOrder(ctx, actor, cart)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, created, order)
	assert.Equal(t, "12345", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusActive, order.Status)
	assert.Equal(t, "Sara Staff", order.PlacedByName)
	assert.Equal(t, actor.UserID, order.PlacedBy)
	assert.Equal(t, "extra spicy", order.StaffNote)
	assert.Equal(t, deliveryDate(), order.OrderDate)
	assert.Equal(t, fx.now, order.CreatedAt)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Rice", order.Items[0].ItemName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 3, order.Items[1].Quantity)

	require.NotNil(t, event)
	assert.Equal(t, order.ID, event.AggregateID)
	assert.Equal(t, constants.EventTypeOrderCreated, event.EventType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, constants.EventTypeOrderCreated, payload["eventType"])
	assert.Equal(t, event.ID.String(), payload["eventId"])
}

func TestOrderService_SubmitOrder_SnapshotIsIndependentOfCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationThornhill)
	cart := filledCart(actor.UserID, entity.LocationThornhill, testItem("Bread", entity.LocationBoth))

	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	var created *entity.Order
	var event *entity.OutboxEvent
	fx.expectSubmitTx(t, &created, &event)
	fx.metrics.EXPECT().OrderPlaced(entity.LocationThornhill).Return()

	order, err := fx.service.SubmitOrder(ctx, actor, cart)
	require.NoError(t, err)

	cart.Lines[0].Quantity = 99
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_SubmitOrder_Validation(t *testing.T) {
	actor := staffActor(entity.LocationNorthYork)
	item := testItem("Rice", entity.LocationBoth)

	tests := []struct {
		name    string
		cart    *entity.Cart
		wantErr error
	}{
		{
			name:    "nil cart",
			cart:    nil,
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name:    "empty cart",
			cart:    &entity.Cart{OwnerID: actor.UserID, Location: entity.LocationNorthYork, OrderDate: deliveryDate()},
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name: "Both is not a destination",
			cart: func() *entity.Cart {
				c := filledCart(actor.UserID, entity.LocationBoth, item)
				return c
			}(),
			wantErr: domainerrors.ErrInvalidOrder,
		},
		{
			name: "missing delivery date",
			cart: func() *entity.Cart {
				c := filledCart(actor.UserID, entity.LocationNorthYork, item)
				c.OrderDate = time.Time{}
				return c
			}(),
			wantErr: domainerrors.ErrInvalidOrder,
		},
		{
			name: "zero quantity",
			cart: func() *entity.Cart {
				c := filledCart(actor.UserID, entity.LocationNorthYork, item)
				c.Lines[0].Quantity = 0
				return c
			}(),
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			order, err := fx.service.SubmitOrder(context.Background(), actor, tt.cart)

			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_SubmitOrder_UserNotAssignedToLocation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationThornhill)
	cart := filledCart(actor.UserID, entity.LocationNorthYork, testItem("Rice", entity.LocationBoth))

	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	order, err := fx.service.SubmitOrder(ctx, actor, cart)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_SubmitOrder_InactiveUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	user := activeStaffUser(actor)
	user.IsActive = false
	cart := filledCart(actor.UserID, entity.LocationNorthYork, testItem("Rice", entity.LocationBoth))

	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(user, nil)

	_, err := fx.service.SubmitOrder(ctx, actor, cart)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_SubmitOrder_TransactionFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	cart := filledCart(actor.UserID, entity.LocationNorthYork, testItem("Rice", entity.LocationBoth))

	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	order, err := fx.service.SubmitOrder(ctx, actor, cart)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGenerateOrderNumber_IsFiveDigits(t *testing.T) {
	for range 200 {
		number := generateOrderNumber()

		require.Len(t, number, 5)
		n, err := strconv.Atoi(number)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
}

func TestOrderService_Checkout_ClearsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	cart := filledCart(actor.UserID, entity.LocationNorthYork, testItem("Rice", entity.LocationBoth))
	cart.StaffNote = "old note"

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(cart, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	var created *entity.Order
	var event *entity.OutboxEvent
	fx.expectSubmitTx(t, &created, &event)
	fx.metrics.EXPECT().OrderPlaced(entity.LocationNorthYork).Return()
	fx.cartRepo.EXPECT().DeleteCart(ctx, actor.UserID).Return(nil)

	order, err := fx.service.Checkout(ctx, actor, "leave at back door")

	require.NoError(t, err)
	assert.Equal(t, "leave at back door", order.StaffNote)
}

func TestOrderService_Checkout_CartClearFailureStillSucceeds(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	cart := filledCart(actor.UserID, entity.LocationNorthYork, testItem("Rice", entity.LocationBoth))

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(cart, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	var created *entity.Order
	var event *entity.OutboxEvent
	fx.expectSubmitTx(t, &created, &event)
	fx.metrics.EXPECT().OrderPlaced(entity.LocationNorthYork).Return()
	fx.cartRepo.EXPECT().DeleteCart(ctx, actor.UserID).Return(errors.New("redis down"))

	order, err := fx.service.Checkout(ctx, actor, "")

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Checkout_NoCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.Checkout(ctx, actor, "")

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_PlaceOrder_MergesRepeatedItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	rice := testItem("Rice", entity.LocationBoth)
	stew := testItem("Stew", entity.LocationNorthYork)

	input := &usecase.PlaceOrderInput{
		Location:  entity.LocationNorthYork,
		OrderDate: deliveryDate(),
		Lines: []usecase.OrderLineInput{
			{ItemID: stew.ID, Quantity: 1},
			{ItemID: rice.ID, Quantity: 2},
			{ItemID: stew.ID, Quantity: 4},
		},
	}

	fx.itemRepo.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{stew.ID, rice.ID}).Return([]*entity.Item{rice, stew}, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, actor.UserID).Return(activeStaffUser(actor), nil)

	var created *entity.Order
	var event *entity.OutboxEvent
	fx.expectSubmitTx(t, &created, &event)
	fx.metrics.EXPECT().OrderPlaced(entity.LocationNorthYork).Return()

	order, err := fx.service.PlaceOrder(ctx, actor, input)

	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Stew", order.Items[0].ItemName)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.Equal(t, "Rice", order.Items[1].ItemName)
	assert.Equal(t, 2, order.Items[1].Quantity)
}

func TestOrderService_PlaceOrder_ItemNotOfferedAtLocation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationThornhill)
	stew := testItem("Stew", entity.LocationNorthYork)

	fx.itemRepo.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{stew.ID}).Return([]*entity.Item{stew}, nil)

	_, err := fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{
		Location:  entity.LocationThornhill,
		OrderDate: deliveryDate(),
		Lines:     []usecase.OrderLineInput{{ItemID: stew.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrItemUnavailable)
}

func TestOrderService_PlaceOrder_UnknownItem(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationThornhill)
	missing := uuid.New()

	fx.itemRepo.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{missing}).Return([]*entity.Item{}, nil)

	_, err := fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{
		Location:  entity.LocationThornhill,
		OrderDate: deliveryDate(),
		Lines:     []usecase.OrderLineInput{{ItemID: missing, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestOrderService_CompleteOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "54321", Status: entity.OrderStatusActive}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusComplete, fx.now).Return(nil)

	completed, err := fx.service.CompleteOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusComplete, completed.Status)
	assert.Equal(t, fx.now, completed.UpdatedAt)
}

func TestOrderService_CompleteOrder_AlreadyComplete(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusComplete}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CompleteOrder(ctx, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotActive)
}

func TestOrderService_CompleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.CompleteOrder(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_VoidOrder(t *testing.T) {
	owner := staffActor(entity.LocationNorthYork)

	tests := []struct {
		name    string
		actor   *usecase.Actor
		wantErr error
	}{
		{name: "submitter", actor: owner},
		{name: "admin", actor: adminActor()},
		{name: "other staff", actor: staffActor(entity.LocationNorthYork), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), PlacedBy: owner.UserID, Status: entity.OrderStatusActive}

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().DeleteOrder(ctx, order.ID).Return(nil)
			}

			err := fx.service.VoidOrder(ctx, tt.actor, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrder_StaffSeesOnlyOwnOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	order := &entity.Order{ID: uuid.New(), PlacedBy: uuid.New()}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, actor, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ListMyOrders_FiltersBySubmitter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(f repository.OrderFilter) bool {
			return f.PlacedBy != nil && *f.PlacedBy == actor.UserID
		})).
		Return([]*entity.Order{}, nil)

	orders, err := fx.service.ListMyOrders(ctx, actor)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ExportOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	location := entity.LocationThornhill
	orders := []*entity.Order{{ID: uuid.New(), OrderNumber: "11111"}}

	fx.orderRepo.EXPECT().
		ListOrders(ctx, repository.OrderFilter{Location: location}).
		Return(orders, nil)
	fx.exporter.EXPECT().
		ExportOrders(mock.Anything, orders).
		RunAndReturn(func(w io.Writer, _ []*entity.Order) error {
			_, err := w.Write([]byte("xlsx-bytes"))
			return err
		})
	fx.exporter.EXPECT().FileExtension().Return(".xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	export, err := fx.service.ExportOrders(ctx, usecase.OrderListFilter{Location: location})

	require.NoError(t, err)
	assert.Equal(t, "orders-20250105.xlsx", export.FileName)
	assert.True(t, bytes.Equal([]byte("xlsx-bytes"), export.Content))
}

func TestOrderService_CompleteOrderByTicket_InvalidCode(t *testing.T) {
	fx := createTestOrderService(t)

	fx.qrCodeSvc.EXPECT().ParseOrderTicketQR("garbage").Return(uuid.Nil, errors.New("unexpected prefix"))

	_, err := fx.service.CompleteOrderByTicket(context.Background(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
}

func TestOrderService_CompleteOrderByTicket(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusActive}

	fx.qrCodeSvc.EXPECT().ParseOrderTicketQR("kitchen-order:"+order.ID.String()).Return(order.ID, nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusComplete, fx.now).Return(nil)

	completed, err := fx.service.CompleteOrderByTicket(ctx, "kitchen-order:"+order.ID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusComplete, completed.Status)
}
