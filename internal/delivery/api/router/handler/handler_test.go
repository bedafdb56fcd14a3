package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"kitchen/internal/delivery/api/response"
	"kitchen/internal/delivery/api/validator"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func staffActor() *usecase.Actor {
	return &usecase.Actor{
		UserID:    uuid.New(),
		Email:     "sara@example.com",
		Role:      entity.RoleStaff,
		Locations: entity.Locations{entity.LocationNorthYork},
	}
}

// newTestContext builds an echo context for a JSON request. A nil actor leaves the request unauthenticated.
func newTestContext(method, target, body string, actor *usecase.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	httpReq := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	if actor != nil {
		deliverycontext.SetActor(c, actor)
	}

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()

	body := response.SuccessResponse{Data: data}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}
