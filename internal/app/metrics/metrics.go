// Package metrics exposes Prometheus instrumentation for the record store,
// translation providers and exporters. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vnote"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics bundles all collectors registered by the application.
type Metrics struct {
	storeOps     *prometheus.CounterVec
	audioHandles prometheus.Gauge
	translate    *prometheus.HistogramVec
	exports      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Record store operations by operation and outcome.",
		}, []string{"op", "status"}),
		audioHandles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "audio_handles",
			Help:      "Live playback handles held by the handle registry.",
		}),
		translate: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "translate_duration_seconds",
			Help:      "Latency of translation requests by provider and outcome.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"provider", "status"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export requests by format and outcome.",
		}, []string{"format", "status"}),
	}

	for _, c := range []prometheus.Collector{m.storeOps, m.audioHandles, m.translate, m.exports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewUnregistered creates collectors backed by a private registry.
func NewUnregistered() *Metrics {
	m, _ := New(prometheus.NewRegistry())
	return m
}

// ObserveStoreOp counts one store operation.
func (m *Metrics) ObserveStoreOp(op string, err error) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, status(err)).Inc()
}

// SetAudioHandles publishes the current number of live handles.
func (m *Metrics) SetAudioHandles(n int) {
	if m == nil {
		return
	}
	m.audioHandles.Set(float64(n))
}

// ObserveTranslate records the latency of one translation call.
func (m *Metrics) ObserveTranslate(provider string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.translate.WithLabelValues(provider, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveExport counts one export request.
func (m *Metrics) ObserveExport(format string, err error) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
