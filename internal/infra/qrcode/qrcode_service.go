// Package qrcode renders and parses the QR codes printed on order tickets.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"kitchen/config"
	"kitchen/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	orderTicketType = "order_ticket"
	defaultSize     = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketPayload is the JSON encoded in an order ticket QR code.
type TicketPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig adapts NewQRCodeService for fx.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) GenerateOrderTicketQR(orderID uuid.UUID, orderNumber string) ([]byte, error) {
	jsonData, err := json.Marshal(TicketPayload{
		OrderID:     orderID.String(),
		OrderNumber: orderNumber,
		Type:        orderTicketType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderTicketQR accepts the JSON payload or, for hand-typed input, a bare order ID.
func (s *qrcodeService) ParseOrderTicketQR(qrData string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(qrData)
	if id, err := uuid.Parse(trimmed); err == nil {
		return id, nil
	}

	var data TicketPayload
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != orderTicketType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
