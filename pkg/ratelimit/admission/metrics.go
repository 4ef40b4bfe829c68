package admission

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	gperrors "github.com/vnykmshr/gopermit/pkg/common/errors"
	"github.com/vnykmshr/gopermit/pkg/metrics"
)

// MetricsLimiter wraps an admission Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new admission limiter with metrics enabled.
func NewWithMetrics(permitLimit int, name string) Limiter {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{PermitLimit: permitLimit}, name, config)
}

// NewWithConfigAndMetrics creates a new admission limiter with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Limiter {
	baseLimiter, err := NewWithConfigSafe(config)
	if err != nil {
		panic("invalid admission limiter configuration: " + err.Error())
	}

	if !metricsConfig.Enabled {
		return baseLimiter
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLimiter{
		limiter:  baseLimiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}

	// Initialize metrics
	ml.updateMetrics()

	return ml
}

// updateMetrics updates the current state gauges.
func (ml *MetricsLimiter) updateMetrics() {
	if !ml.enabled {
		return
	}

	held := ml.limiter.Capacity() - ml.limiter.Available()
	ml.registry.AdmissionActive.WithLabelValues(ml.name).Set(float64(held))
	ml.registry.AdmissionQueued.WithLabelValues(ml.name).Set(float64(ml.limiter.Queued()))
}

// observe records the outcome of an acquisition attempt.
func (ml *MetricsLimiter) observe(lease *Lease, err error) {
	if !ml.enabled {
		return
	}

	switch {
	case err != nil:
		ml.registry.AdmissionDenied.WithLabelValues(ml.name, denyReason(err)).Inc()
	case lease.Acquired():
		ml.registry.AdmissionAcquired.WithLabelValues(ml.name).Inc()
	default:
		reason := "unacquired"
		if _, ok := lease.Reason(); ok {
			reason = "queue_limit"
		}
		ml.registry.AdmissionDenied.WithLabelValues(ml.name, reason).Inc()
	}

	ml.updateMetrics()
}

func denyReason(err error) string {
	switch {
	case errors.Is(err, gperrors.ErrClosed):
		return "closed"
	case gperrors.IsValidationError(err):
		return "invalid"
	default:
		return "canceled"
	}
}

// TryAcquire attempts to acquire one permit without blocking.
func (ml *MetricsLimiter) TryAcquire() (*Lease, error) {
	return ml.TryAcquireN(1)
}

// TryAcquireN attempts to acquire n permits without blocking.
func (ml *MetricsLimiter) TryAcquireN(n int) (*Lease, error) {
	if ml.enabled {
		ml.registry.AdmissionRequests.WithLabelValues(ml.name, "try").Inc()
	}

	lease, err := ml.limiter.TryAcquireN(n)
	ml.observe(lease, err)
	return lease, err
}

// Acquire acquires one permit, waiting if necessary.
func (ml *MetricsLimiter) Acquire(ctx context.Context) (*Lease, error) {
	return ml.AcquireN(ctx, 1)
}

// AcquireN acquires n permits, waiting if necessary.
func (ml *MetricsLimiter) AcquireN(ctx context.Context, n int) (*Lease, error) {
	start := time.Now()

	if ml.enabled {
		ml.registry.AdmissionRequests.WithLabelValues(ml.name, "wait").Inc()
	}

	lease, err := ml.limiter.AcquireN(ctx, n)

	if ml.enabled {
		ml.registry.AdmissionWaitTime.WithLabelValues(ml.name).Observe(time.Since(start).Seconds())
	}
	ml.observe(lease, err)

	return lease, err
}

// Capacity returns the configured permit limit.
func (ml *MetricsLimiter) Capacity() int {
	return ml.limiter.Capacity()
}

// Available returns the number of permits currently available.
func (ml *MetricsLimiter) Available() int {
	available := ml.limiter.Available()

	if ml.enabled {
		held := ml.limiter.Capacity() - available
		ml.registry.AdmissionActive.WithLabelValues(ml.name).Set(float64(held))
	}

	return available
}

// Queued returns the cumulative permit count requested by queued waiters.
func (ml *MetricsLimiter) Queued() int {
	queued := ml.limiter.Queued()

	if ml.enabled {
		ml.registry.AdmissionQueued.WithLabelValues(ml.name).Set(float64(queued))
	}

	return queued
}

// Order returns the configured service order.
func (ml *MetricsLimiter) Order() Order {
	return ml.limiter.Order()
}

// Close closes the underlying limiter.
func (ml *MetricsLimiter) Close() error {
	err := ml.limiter.Close()

	if ml.enabled {
		ml.updateMetrics()
	}

	return err
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled

	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}

	if ml.enabled {
		ml.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
