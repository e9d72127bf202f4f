// Package metrics exposes Prometheus collectors for plan generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "training_periodization"
	subsystem = "planner"

	StatusOK            = "ok"
	StatusInvalid       = "invalid"
	StatusPersistFailed = "persist_failed"
	StatusExportFailed  = "export_failed"
)

// Metrics reports macrocycle generation and export activity.
type Metrics struct {
	generations       *prometheus.CounterVec
	generationSeconds *prometheus.HistogramVec
	exports           *prometheus.CounterVec
}

// MustNewMetrics registers the collectors with reg (the default registerer when nil).
// Collectors that are already registered are reused, so building several services
// against one registry is safe. Any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	generations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "macrocycles_generated_total",
			Help:      "Macrocycle generation attempts by goal, training level and outcome.",
		},
		[]string{"goal", "level", "status"},
	)
	generationSeconds := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "macrocycle_generation_duration_seconds",
			Help:      "Time spent building and persisting a macrocycle.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"goal", "status"},
	)
	exports := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "macrocycle_exports_total",
			Help:      "Macrocycle exports to object storage by outcome.",
		},
		[]string{"status"},
	)

	generations = registerCounterVec(reg, generations)
	generationSeconds = registerHistogramVec(reg, generationSeconds)
	exports = registerCounterVec(reg, exports)

	return &Metrics{
		generations:       generations,
		generationSeconds: generationSeconds,
		exports:           exports,
	}
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogramVec(reg prometheus.Registerer, h *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := reg.Register(h); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}

// ObserveGeneration records one generation attempt and how long it took.
func (m *Metrics) ObserveGeneration(goal, level, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(goal, level, status).Inc()
	m.generationSeconds.WithLabelValues(goal, status).Observe(duration.Seconds())
}

// IncExport counts an export attempt with the given status.
func (m *Metrics) IncExport(status string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(status).Inc()
}
