package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/delivery"
	deliverycontext "kitchen/internal/delivery/context"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	minRetryDelay = 500 * time.Millisecond
	maxRetryDelay = 30 * time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer feeds order events from a Kafka consumer group into the notifier.
// A message is committed once the notifier accepts it or fails permanently;
// retryable failures are retried in place with backoff.
type kafkaConsumer struct {
	reader   messageReader
	notifier usecase.OrderNotifierUsecase
	logger   *slog.Logger
	sleep    func(ctx context.Context, d time.Duration) error

	stopCtx context.Context
	stop    context.CancelFunc
}

// ConsumerParams holds dependencies for the Kafka consumer
type ConsumerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Notifier usecase.OrderNotifierUsecase
}

// NewKafkaConsumer returns nil when the consumer is disabled.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Kafka
	if cfg == nil || !cfg.ConsumerEnabled {
		return nil, nil
	}

	if len(cfg.Brokers) == 0 || cfg.Topic == "" || cfg.GroupID == "" {
		return nil, errors.New("kafka consumer requires brokers, topic and groupId")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})

	consumer := newKafkaConsumer(reader, params.Notifier, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: consumer.close,
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, notifier usecase.OrderNotifierUsecase, logger *slog.Logger) *kafkaConsumer {
	stopCtx, stop := context.WithCancel(context.Background())

	return &kafkaConsumer{
		reader:   reader,
		notifier: notifier,
		logger:   logger,
		sleep:    sleepContext,
		stopCtx:  stopCtx,
		stop:     stop,
	}
}

// close cancels in-flight retries before closing the reader.
func (k *kafkaConsumer) close(context.Context) error {
	k.logger.Info("Stopping Kafka order event consumer")
	k.stop()

	return errors.WithStack(k.reader.Close())
}

// Serve consumes until ctx ends or the reader is closed.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopWatch := context.AfterFunc(k.stopCtx, cancel)
	defer stopWatch()

	k.logger.Info("Starting Kafka order event consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		if err := k.process(ctx, msg); err != nil {
			// Only a cancelled context stops processing of a fetched message
			return nil
		}

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			k.logger.Error("[Kafka] Failed to commit message",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// process handles msg, retrying retryable failures until they succeed or ctx ends.
func (k *kafkaConsumer) process(ctx context.Context, msg kafka.Message) error {
	var event service.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Kafka] Dropping undecodable message",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return nil
	}

	requestID := headerValue(msg.Headers, "request_id")
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := k.logger.With(slog.String("request_id", requestID))
	eventCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	delay := minRetryDelay
	for {
		err := k.notifier.HandleOrderCreated(eventCtx, &event)
		if err == nil {
			reqLogger.Info("[Kafka] Order event processed", slog.String("event_id", event.EventID))

			return nil
		}

		if !domainerrors.IsRetryable(err) {
			reqLogger.Error("[Kafka] Dropping order event", slog.String("event_id", event.EventID), slog.Any("error", err))

			return nil
		}

		reqLogger.Warn("[Kafka] Retrying order event",
			slog.String("event_id", event.EventID),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
		if err := k.sleep(ctx, delay); err != nil {
			return err
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
