package relay

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"kitchen/config"
	mockUsecase "kitchen/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOutboxRelay_DrainsFullBatchesBeforeWaiting(t *testing.T) {
	relay := mockUsecase.NewMockOutboxRelayUsecase(t)
	r := newOutboxRelay(time.Hour, relay, slog.New(slog.DiscardHandler))

	relay.EXPECT().RelayPending(mock.Anything).Return(50, nil).Twice()
	relay.EXPECT().RelayPending(mock.Anything).
		Run(func(context.Context) { r.stop() }).
		Return(0, nil).Once()

	require.NoError(t, r.Serve(context.Background()))
}

func TestOutboxRelay_FailedPassWaitsForNextTick(t *testing.T) {
	relay := mockUsecase.NewMockOutboxRelayUsecase(t)
	r := newOutboxRelay(10*time.Millisecond, relay, slog.New(slog.DiscardHandler))

	relay.EXPECT().RelayPending(mock.Anything).Return(0, errors.New("db unavailable")).Once()
	relay.EXPECT().RelayPending(mock.Anything).
		Run(func(context.Context) { r.stop() }).
		Return(0, nil).Once()

	require.NoError(t, r.Serve(context.Background()))
}

func TestOutboxRelay_StopsWithContext(t *testing.T) {
	relay := mockUsecase.NewMockOutboxRelayUsecase(t)
	r := newOutboxRelay(time.Hour, relay, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	relay.EXPECT().RelayPending(mock.Anything).Return(0, nil).Maybe()

	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestNewOutboxRelay_DisabledReturnsNil(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	r := NewOutboxRelay(RelayParams{
		Lc:     lc,
		Cfg:    &config.Config{Outbox: &config.OutboxConfig{Enabled: false}},
		Logger: slog.New(slog.DiscardHandler),
		Relay:  mockUsecase.NewMockOutboxRelayUsecase(t),
	})

	assert.Nil(t, r)
}
