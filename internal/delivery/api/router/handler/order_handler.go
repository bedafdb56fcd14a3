package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/api/middleware"
	"kitchen/internal/delivery/api/response"
	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order submission and the order management views.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CheckoutRequest submits the stored cart. A non-blank note replaces the cart note.
type CheckoutRequest struct {
	StaffNote string `json:"staffNote" validate:"max=1000"`
}

// PlaceOrderRequest submits a cart kept by the client
type PlaceOrderRequest struct {
	Location  string             `json:"location" validate:"required,branch"`
	OrderDate string             `json:"orderDate" validate:"required"`
	Items     []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	StaffNote string             `json:"staffNote" validate:"max=1000"`
}

// OrderLineRequest is one inline cart line
type OrderLineRequest struct {
	ItemID   uuid.UUID `json:"itemId" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=1"`
}

// CompleteByTicketRequest carries the scanned ticket payload
type CompleteByTicketRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// Checkout handles POST /api/v1/orders/checkout
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req CheckoutRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), actor, req.StaffNote)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// PlaceOrder handles POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlaceOrderRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orderDate, err := parseDate("orderDate", req.OrderDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	lines := make([]usecase.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = usecase.OrderLineInput{ItemID: item.ItemID, Quantity: item.Quantity}
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), actor, &usecase.PlaceOrderInput{
		Location:  entity.Location(req.Location),
		OrderDate: orderDate,
		Lines:     lines,
		StaffNote: req.StaffNote,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListMyOrders handles GET /api/v1/orders/mine
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// VoidOrder handles DELETE /api/v1/orders/:id
func (h *OrderHandler) VoidOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	if err := h.orderUC.VoidOrder(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Order voided"})
}

// ListOrders handles GET /api/v1/admin/orders?location=&status=&from=&to=
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := orderFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// CompleteOrder handles POST /api/v1/admin/orders/:id/complete
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	order, err := h.orderUC.CompleteOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ExportOrders handles GET /api/v1/admin/orders/export
func (h *OrderHandler) ExportOrders(c echo.Context) error {
	filter, err := orderFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	export, err := h.orderUC.ExportOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, export.FileName, export.ContentType, export.Content)
}

// OrderTicket handles GET /api/v1/admin/orders/:id/ticket and returns a PNG
func (h *OrderHandler) OrderTicket(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	png, err := h.orderUC.OrderTicketQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CompleteByTicket handles POST /api/v1/admin/orders/scan
func (h *OrderHandler) CompleteByTicket(c echo.Context) error {
	var req CompleteByTicketRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CompleteOrderByTicket(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListDeliveries handles GET /api/v1/admin/orders/:id/deliveries
func (h *OrderHandler) ListDeliveries(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	deliveries, err := h.orderUC.ListOrderDeliveries(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveries)
}

func orderFilter(c echo.Context) (usecase.OrderListFilter, error) {
	filter := usecase.OrderListFilter{
		Location: entity.Location(c.QueryParam("location")),
		Status:   entity.OrderStatus(c.QueryParam("status")),
	}

	var err error
	if filter.From, err = optionalDate(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = optionalDate(c, "to"); err != nil {
		return filter, err
	}

	return filter, nil
}
