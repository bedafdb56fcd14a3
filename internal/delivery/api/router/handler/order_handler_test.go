package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	mockUsecase "kitchen/internal/mocks/usecase"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC}), orderUC
}

func TestOrderHandler_PlaceOrder_Created(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	actor := staffActor()
	itemID := uuid.New()

	body := `{"location":"North York","orderDate":"2025-01-06","items":[{"itemId":"` + itemID.String() + `","quantity":3}],"staffNote":"Back door"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", body, actor)

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, actor, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.Location == entity.LocationNorthYork &&
				in.OrderDate.Equal(time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)) &&
				len(in.Lines) == 1 && in.Lines[0].ItemID == itemID && in.Lines[0].Quantity == 3 &&
				in.StaffNote == "Back door"
		})).
		Return(&entity.Order{OrderNumber: "48213", Status: entity.OrderStatusActive}, nil)

	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var order entity.Order
	decodeData(t, rec, &order)
	assert.Equal(t, "48213", order.OrderNumber)
}

func TestOrderHandler_PlaceOrder_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "both is not a destination",
			body: `{"location":"Both","orderDate":"2025-01-06","items":[{"itemId":"` + uuid.NewString() + `","quantity":1}]}`,
		},
		{
			name: "no items",
			body: `{"location":"Thornhill","orderDate":"2025-01-06","items":[]}`,
		},
		{
			name: "zero quantity",
			body: `{"location":"Thornhill","orderDate":"2025-01-06","items":[{"itemId":"` + uuid.NewString() + `","quantity":0}]}`,
		},
		{
			name: "malformed date",
			body: `{"location":"Thornhill","orderDate":"06/01/2025","items":[{"itemId":"` + uuid.NewString() + `","quantity":1}]}`,
		},
		{
			name: "not json",
			body: `{"location":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestOrderHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/v1/orders", tt.body, staffActor())

			require.NoError(t, h.PlaceOrder(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	actor := staffActor()
	c, rec := newTestContext(http.MethodPost, "/api/v1/orders/checkout", `{}`, actor)

	orderUC.EXPECT().Checkout(mock.Anything, actor, "").Return(nil, domainerrors.ErrCartEmpty)

	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "CART_EMPTY", errInfo.Code)
	assert.Equal(t, "Cart must contain at least one item", errInfo.Message)
}

func TestOrderHandler_RequiresActor(t *testing.T) {
	h, _ := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/mine", "", nil)

	require.NoError(t, h.ListMyOrders(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_VoidOrder(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	actor := staffActor()
	id := uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/orders/"+id.String(), "", actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	orderUC.EXPECT().VoidOrder(mock.Anything, actor, id).Return(nil)

	require.NoError(t, h.VoidOrder(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var msg MessageResponse
	decodeData(t, rec, &msg)
	assert.Equal(t, "Order voided", msg.Message)
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	h, _ := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/abc", "", staffActor())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetOrder(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestOrderHandler_CompleteOrder_NotActive(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	id := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/complete", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	orderUC.EXPECT().CompleteOrder(mock.Anything, id).Return(nil, domainerrors.ErrOrderNotActive)

	require.NoError(t, h.CompleteOrder(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ORDER_NOT_ACTIVE", decodeError(t, rec).Code)
}

func TestOrderHandler_ListOrders_ParsesFilter(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/orders?location=Thornhill&status=Active&from=2025-01-01&to=2025-01-31", "", nil)

	orderUC.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(f usecase.OrderListFilter) bool {
			return f.Location == entity.LocationThornhill &&
				f.Status == entity.OrderStatusActive &&
				f.From != nil && f.From.Day() == 1 &&
				f.To != nil && f.To.Day() == 31
		})).
		Return([]*entity.Order{}, nil)

	require.NoError(t, h.ListOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_ListOrders_BadDate(t *testing.T) {
	h, _ := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/orders?from=yesterday", "", nil)

	require.NoError(t, h.ListOrders(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "from must be a date in YYYY-MM-DD format", decodeError(t, rec).Details)
}

func TestOrderHandler_ExportOrders_Attachment(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/orders/export", "", nil)

	orderUC.EXPECT().
		ExportOrders(mock.Anything, usecase.OrderListFilter{}).
		Return(&usecase.OrderExport{
			FileName:    "orders-2025-01-06.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("xlsx"),
		}, nil)

	require.NoError(t, h.ExportOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="orders-2025-01-06.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestOrderHandler_CompleteByTicket(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/orders/scan", `{"qrData":"kitchen-order:abc"}`, nil)

	orderUC.EXPECT().
		CompleteOrderByTicket(mock.Anything, "kitchen-order:abc").
		Return(nil, domainerrors.ErrInvalidQRCode)

	require.NoError(t, h.CompleteByTicket(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QR_CODE", decodeError(t, rec).Code)
}

func TestOrderHandler_UnexpectedErrorGoesToMiddleware(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	actor := staffActor()
	c, _ := newTestContext(http.MethodGet, "/api/v1/orders/mine", "", actor)

	orderUC.EXPECT().ListMyOrders(mock.Anything, actor).Return(nil, context.DeadlineExceeded)

	err := h.ListMyOrders(c)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
