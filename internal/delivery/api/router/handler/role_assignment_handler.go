package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"kitchen/internal/delivery/api/response"
	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleAssignmentHandlerParams holds dependencies for RoleAssignmentHandler, injected by Fx.
type RoleAssignmentHandlerParams struct {
	fx.In

	RoleUC usecase.RoleAssignmentUsecase
	Logger *slog.Logger
}

// RoleAssignmentHandler lets admins edit who may log in and with which role.
type RoleAssignmentHandler struct {
	roleUC usecase.RoleAssignmentUsecase
	logger *slog.Logger
}

// NewRoleAssignmentHandler is the constructor for RoleAssignmentHandler
func NewRoleAssignmentHandler(params RoleAssignmentHandlerParams) *RoleAssignmentHandler {
	return &RoleAssignmentHandler{
		roleUC: params.RoleUC,
		logger: params.Logger,
	}
}

// UpsertRoleAssignmentRequest creates or replaces the assignment for an email
type UpsertRoleAssignmentRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	FullName          string   `json:"fullName"`
	Role              string   `json:"role" validate:"required,oneof=Admin Staff"`
	AssignedLocations []string `json:"assignedLocations" validate:"omitempty,dive,location"`
	IsActive          *bool    `json:"isActive"`
}

// ListAssignments handles GET /api/v1/admin/role-assignments
func (h *RoleAssignmentHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.roleUC.ListAssignments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignments)
}

// UpsertAssignment handles PUT /api/v1/admin/role-assignments
func (h *RoleAssignmentHandler) UpsertAssignment(c echo.Context) error {
	var req UpsertRoleAssignmentRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	// New assignments are active unless stated otherwise
	isActive := req.IsActive == nil || *req.IsActive

	assignment, err := h.roleUC.UpsertAssignment(c.Request().Context(), &usecase.UpsertRoleAssignmentInput{
		Email:             req.Email,
		FullName:          req.FullName,
		Role:              entity.Role(req.Role),
		AssignedLocations: entity.LocationsFromStrings(req.AssignedLocations),
		IsActive:          isActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /api/v1/admin/role-assignments/:email
func (h *RoleAssignmentHandler) DeleteAssignment(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMAIL", "Invalid email in path")
	}

	if err := h.roleUC.DeleteAssignment(c.Request().Context(), email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Role assignment deleted"})
}
