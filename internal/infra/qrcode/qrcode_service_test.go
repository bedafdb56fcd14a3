package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRecoveryLevel(tt.in), tt.in)
	}
}

func TestQRCodeService_GenerateOrderTicketQR(t *testing.T) {
	svc := NewQRCodeService(200, "M")

	qrBytes, err := svc.GenerateOrderTicketQR(uuid.New(), "12345")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_NonPositiveSizeUsesDefault(t *testing.T) {
	svc := NewQRCodeService(0, "M")

	qrBytes, err := svc.GenerateOrderTicketQR(uuid.New(), "12345")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_ParseOrderTicketQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(TicketPayload{OrderID: orderID.String(), Type: orderTicketType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "ticket payload", data: string(payload), want: orderID},
		{name: "bare order id", data: " " + orderID.String() + " ", want: orderID},
		{name: "wrong type", data: `{"order_id":"` + orderID.String() + `","type":"subscription"}`, wantErr: true},
		{name: "bad id", data: `{"order_id":"nope","type":"order_ticket"}`, wantErr: true},
		{name: "garbage", data: "not json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseOrderTicketQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
