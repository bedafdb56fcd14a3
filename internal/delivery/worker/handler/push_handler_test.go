package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/constants"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/service"
	mockUsecase "kitchen/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockOrderNotifierUsecase) {
	notifier := mockUsecase.NewMockOrderNotifierUsecase(t)

	return &PushHandler{
		logger:   slog.New(slog.DiscardHandler),
		notifier: notifier,
	}, notifier
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) []byte {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_DeliversEventToNotifier(t *testing.T) {
	h, notifier := newTestPushHandler(t)

	event := &service.OrderEvent{EventID: "evt-1", EventType: constants.EventTypeOrderCreated, RequestID: "from-event"}

	notifier.EXPECT().
		HandleOrderCreated(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.EventID == "evt-1" })).
		Run(func(ctx context.Context, _ *service.OrderEvent) {
			assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StatusByErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "retryable asks for redelivery", err: domainerrors.NewRetryableError(errors.New("db down")), want: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", err: errors.New("event has no order"), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestPushHandler(t)
			notifier.EXPECT().HandleOrderCreated(mock.Anything, mock.Anything).Return(tt.err)

			rec := doPush(h, pushBody(t, &service.OrderEvent{EventID: "evt-2"}, nil), nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedData(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%% not base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	tests := []struct {
		name    string
		header  http.Header
		issuer  string
		wantErr bool
		want    int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "wrong issuer", header: http.Header{"Authorization": {"Bearer tok"}}, issuer: "evil.example.com", want: http.StatusUnauthorized},
		{name: "invalid signature", header: http.Header{"Authorization": {"Bearer tok"}}, wantErr: true, want: http.StatusUnauthorized},
		{name: "valid token", header: http.Header{"Authorization": {"Bearer tok"}}, issuer: "https://accounts.google.com", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestPushHandler(t)
			h.verifyPushAuth = true
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "tok", token)
				assert.Equal(t, "http://example.com/push", audience)
				if tt.wantErr {
					return nil, errors.New("bad signature")
				}

				return &idtoken.Payload{Issuer: tt.issuer}, nil
			}
			if tt.want == http.StatusOK {
				notifier.EXPECT().HandleOrderCreated(mock.Anything, mock.Anything).Return(nil)
			}

			rec := doPush(h, pushBody(t, &service.OrderEvent{EventID: "evt-3"}, nil), tt.header)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
