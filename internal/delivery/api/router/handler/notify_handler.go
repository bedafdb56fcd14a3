package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kitchen/config"
	"kitchen/internal/delivery/api/response"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotifyHandlerParams holds dependencies for NotifyHandler, injected by Fx.
type NotifyHandlerParams struct {
	fx.In

	Config   *config.Config
	NotifyUC usecase.NotifyUsecase
	Logger   *slog.Logger
}

// NotifyHandler serves the direct notification endpoints.
// Their bodies are flat {success, ...} objects rather than the API envelope.
type NotifyHandler struct {
	notifyUC   usecase.NotifyUsecase
	fromNumber string
	logger     *slog.Logger
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	h := &NotifyHandler{
		notifyUC: params.NotifyUC,
		logger:   params.Logger,
	}
	if params.Config.Twilio != nil {
		h.fromNumber = params.Config.Twilio.FromNumber
	}

	return h
}

// AlertItem is one ordered item in a direct alert
type AlertItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderAlertRequest holds the order fields shared by send-sms and send-email
type OrderAlertRequest struct {
	OrderNumber  string      `json:"orderNumber"`
	Location     string      `json:"location"`
	PlacedBy     string      `json:"placedBy"`
	OrderItems   []AlertItem `json:"orderItems"`
	StaffNote    string      `json:"staffNote"`
	DeliveryDate string      `json:"deliveryDate"`
}

// SendSMSRequest is the body of POST /api/send-sms
type SendSMSRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OrderAlertRequest
}

// SendEmailRequest is the body of POST /api/send-email
type SendEmailRequest struct {
	EmailAddress string `json:"emailAddress"`
	OrderAlertRequest
}

// TestSMSRequest is the body of POST /api/test-sms
type TestSMSRequest struct {
	TestPhoneNumber string `json:"testPhoneNumber"`
}

// SendSMSResponse reports an accepted SMS
type SendSMSResponse struct {
	Success    bool   `json:"success"`
	MessageSID string `json:"messageSid"`
	Status     string `json:"status"`
}

// SendEmailResponse reports a sent or simulated email
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
}

// TestSMSResponse reports a sent test message
type TestSMSResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	MessageSID string `json:"messageSid"`
	Status     string `json:"status"`
	SentTo     string `json:"sentTo"`
}

// VerifySMSResponse reports the account behind the SMS credentials
type VerifySMSResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Account     *service.SMSAccount `json:"account"`
	PhoneNumber string              `json:"phoneNumber"`
}

func (r *OrderAlertRequest) toInput() *usecase.OrderAlertInput {
	items := make([]usecase.NotifyItem, len(r.OrderItems))
	for i, item := range r.OrderItems {
		items[i] = usecase.NotifyItem{Name: item.Name, Quantity: item.Quantity}
	}

	return &usecase.OrderAlertInput{
		OrderNumber:  r.OrderNumber,
		Location:     r.Location,
		PlacedBy:     r.PlacedBy,
		Items:        items,
		StaffNote:    r.StaffNote,
		DeliveryDate: parseAlertDate(r.DeliveryDate),
	}
}

// parseAlertDate accepts a plain date or a full timestamp; anything else renders without a date.
func parseAlertDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}

func badAlertRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response.AlertErrorResponse{Error: message})
}

// SendSMS handles POST /api/send-sms
func (h *NotifyHandler) SendSMS(c echo.Context) error {
	var req SendSMSRequest
	if err := c.Bind(&req); err != nil {
		return badAlertRequest(c, "Request body could not be parsed")
	}

	result, err := h.notifyUC.SendOrderSMS(c.Request().Context(), req.PhoneNumber, req.toInput())
	if err != nil {
		return response.AlertError(c, err)
	}

	return c.JSON(http.StatusOK, SendSMSResponse{Success: true, MessageSID: result.SID, Status: result.Status})
}

// SendEmail handles POST /api/send-email
func (h *NotifyHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return badAlertRequest(c, "Request body could not be parsed")
	}

	output, err := h.notifyUC.SendOrderEmail(c.Request().Context(), req.EmailAddress, req.toInput())
	if err != nil {
		return response.AlertError(c, err)
	}

	return c.JSON(http.StatusOK, SendEmailResponse{Success: true, Message: output.Message, EmailID: output.EmailID})
}

// SendTestSMS handles POST /api/test-sms
func (h *NotifyHandler) SendTestSMS(c echo.Context) error {
	var req TestSMSRequest
	if err := c.Bind(&req); err != nil {
		return badAlertRequest(c, "Request body could not be parsed")
	}

	if strings.TrimSpace(req.TestPhoneNumber) == "" {
		return badAlertRequest(c, "testPhoneNumber is required")
	}

	result, err := h.notifyUC.SendTestSMS(c.Request().Context(), req.TestPhoneNumber)
	if err != nil {
		return response.AlertError(c, err)
	}

	return c.JSON(http.StatusOK, TestSMSResponse{
		Success:    true,
		Message:    "Test SMS sent successfully",
		MessageSID: result.SID,
		Status:     result.Status,
		SentTo:     req.TestPhoneNumber,
	})
}

// VerifySMS handles GET /api/test-sms
func (h *NotifyHandler) VerifySMS(c echo.Context) error {
	account, err := h.notifyUC.VerifySMSCredentials(c.Request().Context())
	if err != nil {
		return response.AlertError(c, err)
	}

	return c.JSON(http.StatusOK, VerifySMSResponse{
		Success:     true,
		Message:     "Twilio credentials are valid",
		Account:     account,
		PhoneNumber: h.fromNumber,
	})
}
