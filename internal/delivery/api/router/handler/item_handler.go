package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/api/middleware"
	"kitchen/internal/delivery/api/response"
	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler serves the staff catalog and the admin item management.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// CreateItemRequest adds an item to the catalog
type CreateItemRequest struct {
	Name              string   `json:"name" validate:"required"`
	NamePersian       string   `json:"namePersian"`
	AssignedLocations []string `json:"assignedLocations" validate:"required,min=1,dive,location"`
}

// UpdateItemRequest changes the fields that are present
type UpdateItemRequest struct {
	Name              *string  `json:"name"`
	NamePersian       *string  `json:"namePersian"`
	DisplayOrder      *int     `json:"displayOrder" validate:"omitempty,min=0"`
	AssignedLocations []string `json:"assignedLocations" validate:"omitempty,min=1,dive,location"`
	IsActive          *bool    `json:"isActive"`
}

// Catalog handles GET /api/v1/catalog?location=&search=
// Staff without an explicit location get the first branch they are assigned to.
func (h *ItemHandler) Catalog(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	location := entity.Location(c.QueryParam("location"))
	if location == "" {
		location = defaultBranch(actor)
	}
	if !location.IsBranch() {
		return response.BadRequest(c, "INVALID_LOCATION", "location must be North York or Thornhill")
	}

	items, err := h.itemUC.Catalog(c.Request().Context(), location, c.QueryParam("search"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ListItems handles GET /api/v1/admin/items
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemUC.ListItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// CreateItem handles POST /api/v1/admin/items
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), &usecase.CreateItemInput{
		Name:              req.Name,
		NamePersian:       req.NamePersian,
		AssignedLocations: entity.LocationsFromStrings(req.AssignedLocations),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateItem handles PATCH /api/v1/admin/items/:id
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "item")
	}

	var req UpdateItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateItemInput{
		Name:         req.Name,
		NamePersian:  req.NamePersian,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if req.AssignedLocations != nil {
		input.AssignedLocations = entity.LocationsFromStrings(req.AssignedLocations)
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/admin/items/:id
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "item")
	}

	if err := h.itemUC.DeleteItem(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Item deleted"})
}

func defaultBranch(actor *usecase.Actor) entity.Location {
	for _, loc := range actor.Locations {
		if loc.IsBranch() {
			return loc
		}
	}

	return ""
}
