package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResendSender_SendEmail(t *testing.T) {
	var got resendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	sender := NewResendSender("re_test", "Kitchen <orders@example.com>", server.URL+"/", time.Second, newDiscardLogger())

	receipt, err := sender.SendEmail(context.Background(), &service.EmailMessage{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "New Order",
		Text:    "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-1", receipt.ID)
	assert.False(t, receipt.Simulated)
	assert.Equal(t, "Kitchen <orders@example.com>", got.From)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got.To)
	assert.Empty(t, got.HTML)
}

func TestResendSender_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer server.Close()

	sender := NewResendSender("re_test", "x", server.URL, time.Second, newDiscardLogger())

	_, err := sender.SendEmail(context.Background(), &service.EmailMessage{To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from")
}

func TestLogSender_Simulates(t *testing.T) {
	receipt, err := NewLogSender(newDiscardLogger()).SendEmail(context.Background(), &service.EmailMessage{To: []string{"a@example.com"}})

	require.NoError(t, err)
	assert.True(t, receipt.Simulated)
}
