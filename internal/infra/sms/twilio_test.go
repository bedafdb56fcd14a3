package sms

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(t *testing.T, baseURL string, cfg *config.TwilioConfig) service.SMSSender {
	t.Helper()

	if cfg == nil {
		cfg = &config.TwilioConfig{
			AccountSID: "AC123",
			AuthToken:  "token",
			FromNumber: "+15550001111",
		}
	}
	cfg.BaseURL = baseURL
	cfg.Timeout = time.Second

	return NewTwilioSender(Params{
		Config: &config.Config{Twilio: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestTwilioSender_SendSMS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550001111", r.PostForm.Get("From"))
		assert.Equal(t, "+14161234567", r.PostForm.Get("To"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer server.Close()

	sender := newTestSender(t, server.URL, nil)
	require.True(t, sender.Configured())

	result, err := sender.SendSMS(context.Background(), "+14161234567", "hello")
	require.NoError(t, err)
	assert.Equal(t, "SM1", result.SID)
	assert.Equal(t, "queued", result.Status)
}

func TestTwilioSender_NonCreatedIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// 200 is not the documented success code for message creation.
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	_, err := newTestSender(t, server.URL, nil).SendSMS(context.Background(), "123", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
}

func TestTwilioSender_NotConfigured(t *testing.T) {
	sender := newTestSender(t, "http://unused", &config.TwilioConfig{AccountSID: "AC123"})

	assert.False(t, sender.Configured())
	_, err := sender.SendSMS(context.Background(), "+14161234567", "hello")
	assert.Error(t, err)
	_, err = sender.VerifyCredentials(context.Background())
	assert.Error(t, err)
}

func TestTwilioSender_VerifyCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"sid":"AC123","friendly_name":"Kitchen","status":"active"}`))
	}))
	defer server.Close()

	account, err := newTestSender(t, server.URL, nil).VerifyCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", account.FriendlyName)
	assert.Equal(t, "active", account.Status)
}
