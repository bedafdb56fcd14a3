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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the server-side cart of the calling staff member.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// SelectDestinationRequest picks the branch and delivery date
type SelectDestinationRequest struct {
	Location  string `json:"location" validate:"required,branch"`
	OrderDate string `json:"orderDate" validate:"required"`
}

// AddCartItemRequest adds units of an item
type AddCartItemRequest struct {
	ItemID   uuid.UUID `json:"itemId" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest overwrites a line quantity; zero removes the line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartNoteRequest sets the staff note
type CartNoteRequest struct {
	StaffNote string `json:"staffNote" validate:"max=1000"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SelectDestination handles PUT /api/v1/cart/destination
func (h *CartHandler) SelectDestination(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req SelectDestinationRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orderDate, err := parseDate("orderDate", req.OrderDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.SelectDestination(c.Request().Context(), actor, entity.Location(req.Location), orderDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddCartItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), actor, req.ItemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity handles PUT /api/v1/cart/items/:itemId
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return invalidID(c, "item")
	}

	var req UpdateCartItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), actor, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/v1/cart/items/:itemId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return invalidID(c, "item")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), actor, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetNote handles PUT /api/v1/cart/note
func (h *CartHandler) SetNote(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req CartNoteRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.SetNote(c.Request().Context(), actor, req.StaffNote)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Cart cleared"})
}
