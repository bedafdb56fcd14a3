// Package handler contains the echo handlers of the kitchen API.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"kitchen/internal/delivery/api/response"
	domainerrors "kitchen/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format of delivery dates.
const dateLayout = time.DateOnly

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindRequest binds and validates req. Failures come back as a VALIDATION_FAILED AppError.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
}

// pathUUID parses the named path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

// parseDate parses a YYYY-MM-DD date at UTC midnight.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}

	return t, nil
}

// optionalDate parses a query date, returning nil when the parameter is absent.
func optionalDate(c echo.Context, name string) (*time.Time, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}

	t, err := parseDate(name, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
