package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/constants"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/service"
	mockUsecase "kitchen/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out queued messages, then blocks until ctx ends.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()

		return msg, nil
	}
	r.mu.Unlock()

	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) committedOffsets() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]int64, 0, len(r.committed))
	for _, m := range r.committed {
		offsets = append(offsets, m.Offset)
	}

	return offsets
}

func eventMessage(t *testing.T, offset int64, event *service.OrderEvent, headers ...kafka.Header) kafka.Message {
	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Offset: offset, Value: value, Headers: headers}
}

func newTestConsumer(t *testing.T, reader messageReader) (*kafkaConsumer, *mockUsecase.MockOrderNotifierUsecase) {
	notifier := mockUsecase.NewMockOrderNotifierUsecase(t)
	consumer := newKafkaConsumer(reader, notifier, slog.New(slog.DiscardHandler))
	consumer.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }

	return consumer, notifier
}

// serveUntil runs Serve and stops the consumer once the reader has committed n messages.
func serveUntil(t *testing.T, consumer *kafkaConsumer, reader *fakeReader, n int) {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- consumer.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		return len(reader.committedOffsets()) >= n
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, consumer.close(context.Background()))
	require.NoError(t, <-done)
}

func TestKafkaConsumer_DeliversEventWithHeaderRequestID(t *testing.T) {
	reader := &fakeReader{}
	consumer, notifier := newTestConsumer(t, reader)

	event := &service.OrderEvent{EventID: "evt-1", EventType: constants.EventTypeOrderCreated, RequestID: "from-event"}
	reader.messages = []kafka.Message{
		eventMessage(t, 7, event, kafka.Header{Key: "request_id", Value: []byte("from-header")}),
	}

	notifier.EXPECT().
		HandleOrderCreated(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-header"
		}), mock.MatchedBy(func(e *service.OrderEvent) bool { return e.EventID == "evt-1" })).
		Return(nil)

	serveUntil(t, consumer, reader, 1)

	assert.Equal(t, []int64{7}, reader.committedOffsets())
	assert.True(t, reader.closed)
}

func TestKafkaConsumer_RetriesRetryableFailures(t *testing.T) {
	reader := &fakeReader{}
	consumer, notifier := newTestConsumer(t, reader)

	var delays []time.Duration
	consumer.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)

		return nil
	}

	event := &service.OrderEvent{EventID: "evt-2", EventType: constants.EventTypeOrderCreated}
	reader.messages = []kafka.Message{eventMessage(t, 3, event)}

	notifier.EXPECT().
		HandleOrderCreated(mock.Anything, mock.Anything).
		Return(domainerrors.NewRetryableError(errors.New("settings unavailable"))).
		Times(2)
	notifier.EXPECT().HandleOrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

	serveUntil(t, consumer, reader, 1)

	assert.Equal(t, []time.Duration{minRetryDelay, 2 * minRetryDelay}, delays)
	assert.Equal(t, []int64{3}, reader.committedOffsets())
}

func TestKafkaConsumer_CommitsPermanentFailuresAndBadPayloads(t *testing.T) {
	reader := &fakeReader{}
	consumer, notifier := newTestConsumer(t, reader)

	event := &service.OrderEvent{EventID: "evt-3", EventType: constants.EventTypeOrderCreated}
	reader.messages = []kafka.Message{
		{Offset: 1, Value: []byte("not json")},
		eventMessage(t, 2, event),
	}

	notifier.EXPECT().HandleOrderCreated(mock.Anything, mock.Anything).Return(errors.New("event has no order")).Once()

	serveUntil(t, consumer, reader, 2)

	assert.Equal(t, []int64{1, 2}, reader.committedOffsets())
}

func TestKafkaConsumer_StopDuringRetryLeavesMessageUncommitted(t *testing.T) {
	reader := &fakeReader{}
	consumer, notifier := newTestConsumer(t, reader)
	consumer.sleep = sleepContext

	event := &service.OrderEvent{EventID: "evt-4", EventType: constants.EventTypeOrderCreated}
	reader.messages = []kafka.Message{eventMessage(t, 9, event)}

	attempted := make(chan struct{}, 1)
	notifier.EXPECT().
		HandleOrderCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.OrderEvent) {
			select {
			case attempted <- struct{}{}:
			default:
			}
		}).
		Return(domainerrors.NewRetryableError(errors.New("sms provider down")))

	done := make(chan error, 1)
	go func() { done <- consumer.Serve(context.Background()) }()

	<-attempted
	require.NoError(t, consumer.close(context.Background()))
	require.NoError(t, <-done)

	assert.Empty(t, reader.committedOffsets())
}

func TestHeaderValue(t *testing.T) {
	headers := []kafka.Header{{Key: "a", Value: []byte("1")}, {Key: "request_id", Value: []byte("rid")}}

	assert.Equal(t, "rid", headerValue(headers, "request_id"))
	assert.Empty(t, headerValue(headers, "missing"))
}
