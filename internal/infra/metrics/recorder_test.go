package metrics

import (
	"testing"

	"kitchen/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.OrderPlaced(entity.LocationThornhill)
	r.OrderPlaced(entity.LocationThornhill)
	r.NotificationSent(entity.ChannelSMS, entity.DeliveryStatusFailed)
	r.OutboxPublished("published")

	assert.InDelta(t, 2, testutil.ToFloat64(r.ordersPlaced.WithLabelValues("Thornhill")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.notificationsSent.WithLabelValues("sms", "failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.outboxPublished.WithLabelValues("published")), 0)
}

func TestRecorder_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
