package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderTicketQR generates a QR code the kitchen scans to open an order.
	GenerateOrderTicketQR(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParseOrderTicketQR parses QR code data and returns the order ID
	ParseOrderTicketQR(qrData string) (uuid.UUID, error)
}
