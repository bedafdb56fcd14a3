package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_WrapsEventInPushEnvelope(t *testing.T) {
	orderID := uuid.New()
	event := &service.OrderEvent{
		RequestID: "req-1",
		EventID:   uuid.NewString(),
		EventType: "order.created",
		Order: &entity.Order{
			ID:          orderID,
			OrderNumber: "12345",
			Location:    entity.LocationNorthYork,
		},
		OccurredAt: time.Now().UTC(),
	}

	var received PushEnvelope
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, event.EventID, received.Message.MessageID)
	assert.Equal(t, orderID.String(), received.Message.Attributes["order_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "12345", decoded.Order.OrderNumber)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{EventID: "e1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
