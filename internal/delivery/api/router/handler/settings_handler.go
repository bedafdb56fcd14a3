package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/api/response"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler serves the notification settings form.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// SaveSettingsRequest is the whole settings form. Blank slots are allowed and dropped.
type SaveSettingsRequest struct {
	PhoneNumbers   []string `json:"phoneNumbers"`
	EmailAddresses []string `json:"emailAddresses"`
	SMSEnabled     bool     `json:"smsEnabled"`
	EmailEnabled   bool     `json:"emailEnabled"`
	PushEnabled    bool     `json:"pushEnabled"`
}

// GetSettings handles GET /api/v1/admin/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// SaveSettings handles PUT /api/v1/admin/settings
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	var req SaveSettingsRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.SaveSettings(c.Request().Context(), &usecase.SaveSettingsInput{
		PhoneNumbers:   req.PhoneNumbers,
		EmailAddresses: req.EmailAddresses,
		SMSEnabled:     req.SMSEnabled,
		EmailEnabled:   req.EmailEnabled,
		PushEnabled:    req.PushEnabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
