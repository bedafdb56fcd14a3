// Package metrics exposes order and notification counters to Prometheus.
package metrics

import (
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const namespace = "kitchen"

// Recorder implements service.MetricsRecorder with Prometheus counters.
type Recorder struct {
	ordersPlaced      *prometheus.CounterVec
	notificationsSent *prometheus.CounterVec
	outboxPublished   *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders persisted, by delivery location.",
		}, []string{"location"}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Order alerts attempted, by channel and outcome.",
		}, []string{"channel", "status"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_total",
			Help:      "Outbox relay publish attempts, by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{r.ordersPlaced, r.notificationsSent, r.outboxPublished} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) OrderPlaced(location entity.Location) {
	r.ordersPlaced.WithLabelValues(location.String()).Inc()
}

func (r *Recorder) NotificationSent(channel entity.NotificationChannel, status string) {
	r.notificationsSent.WithLabelValues(string(channel), status).Inc()
}

func (r *Recorder) OutboxPublished(result string) {
	r.outboxPublished.WithLabelValues(result).Inc()
}

// NewDefaultRecorder registers on the process-wide registry served by promhttp.Handler.
func NewDefaultRecorder() (service.MetricsRecorder, error) {
	return NewRecorder(prometheus.DefaultRegisterer)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDefaultRecorder),
)
