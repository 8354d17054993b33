// Package observability exposes Prometheus metrics for the engine: message
// throughput, storage round-trips and playback activity.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine's Prometheus collectors.
type Metrics struct {
	MessagesTotal   *prometheus.CounterVec
	StorageOpsTotal *prometheus.CounterVec
	TicksTotal      prometheus.Counter
	Playhead        prometheus.Gauge
}

// New creates the metric set and registers it on the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motif",
			Name:      "messages_total",
			Help:      "Messages handled by the execution host, by type and outcome.",
		}, []string{"type", "outcome"}),
		StorageOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motif",
			Name:      "storage_ops_total",
			Help:      "Round-trips to the storage collaborator, by operation.",
		}, []string{"op"}),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "motif",
			Name:      "playback_ticks_total",
			Help:      "Playback scheduler ticks that applied properties.",
		}),
		Playhead: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "motif",
			Name:      "playback_playhead_seconds",
			Help:      "Current playhead position of the preview timeline.",
		}),
	}

	reg.MustRegister(m.MessagesTotal, m.StorageOpsTotal, m.TicksTotal, m.Playhead)
	return m
}

// NewNop creates an unregistered metric set for tests and embedding.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveMessage records one handled message.
func (m *Metrics) ObserveMessage(msgType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.MessagesTotal.WithLabelValues(msgType, outcome).Inc()
}
