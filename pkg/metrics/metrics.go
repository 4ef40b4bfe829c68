// Package metrics provides Prometheus instrumentation for gopermit components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopermit components.
type Registry struct {
	// Admission Metrics
	AdmissionRequests *prometheus.CounterVec
	AdmissionAcquired *prometheus.CounterVec
	AdmissionDenied   *prometheus.CounterVec
	AdmissionWaitTime *prometheus.HistogramVec
	AdmissionActive   *prometheus.GaugeVec
	AdmissionQueued   *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gopermit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		AdmissionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "requests_total",
				Help:      "Total number of admission requests",
			},
			[]string{"limiter_name", "mode"},
		),

		AdmissionAcquired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "acquired_total",
				Help:      "Total number of granted acquisitions",
			},
			[]string{"limiter_name"},
		),

		AdmissionDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "denied_total",
				Help:      "Total number of denied acquisitions",
			},
			[]string{"limiter_name", "reason"},
		),

		AdmissionWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "wait_duration_seconds",
				Help:      "Time spent waiting for permits to be granted",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_name"},
		),

		AdmissionActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "active_permits",
				Help:      "Number of permits currently held by outstanding leases",
			},
			[]string{"limiter_name"},
		),

		AdmissionQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopermit",
				Subsystem: "admission",
				Name:      "queued_permits",
				Help:      "Cumulative permit count requested by queued waiters",
			},
			[]string{"limiter_name"},
		),
	}
}
