// Package relay runs the loop that drains the order event outbox.
package relay

import (
	"context"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/delivery"
	"kitchen/internal/usecase"

	"go.uber.org/fx"
)

type outboxRelay struct {
	interval time.Duration
	relay    usecase.OutboxRelayUsecase
	logger   *slog.Logger

	stopCtx context.Context
	stop    context.CancelFunc
}

// RelayParams holds dependencies for the outbox relay loop
type RelayParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Relay  usecase.OutboxRelayUsecase
}

// NewOutboxRelay returns nil when the outbox is disabled.
func NewOutboxRelay(params RelayParams) delivery.Delivery {
	if params.Cfg.Outbox == nil || !params.Cfg.Outbox.Enabled {
		return nil
	}

	r := newOutboxRelay(params.Cfg.Outbox.Interval, params.Relay, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.stop()

			return nil
		},
	})

	return r
}

func newOutboxRelay(interval time.Duration, relay usecase.OutboxRelayUsecase, logger *slog.Logger) *outboxRelay {
	stopCtx, stop := context.WithCancel(context.Background())

	return &outboxRelay{
		interval: interval,
		relay:    relay,
		logger:   logger,
		stopCtx:  stopCtx,
		stop:     stop,
	}
}

// Serve polls the outbox until ctx ends or the relay is stopped.
// A full batch is followed immediately by another poll.
func (r *outboxRelay) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopWatch := context.AfterFunc(r.stopCtx, cancel)
	defer stopWatch()

	r.logger.Info("Starting outbox relay", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.drain(ctx)

		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")

			return nil
		case <-ticker.C:
		}
	}
}

// drain relays batches until one comes back empty or fails.
func (r *outboxRelay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		published, err := r.relay.RelayPending(ctx)
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Error("Outbox relay pass failed", slog.Any("error", err))
			}

			return
		}
		if published == 0 {
			return
		}

		r.logger.Debug("Relayed order events", slog.Int("count", published))
	}
}
