package admission

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopermit/internal/testutil"
	"github.com/vnykmshr/gopermit/pkg/metrics"
)

func TestNewWithMetrics(t *testing.T) {
	limiter := NewWithMetrics(5, "test-limiter")

	ml, ok := limiter.(*MetricsLimiter)
	if !ok {
		t.Fatalf("expected *MetricsLimiter, got %T", limiter)
	}
	testutil.AssertEqual(t, ml.MetricsEnabled(), true)
	testutil.AssertEqual(t, limiter.Capacity(), 5)
	testutil.AssertEqual(t, limiter.Available(), 5)
}

func TestMetricsLimiterDelegates(t *testing.T) {
	limiter := NewWithConfigAndMetrics(
		Config{PermitLimit: 3, QueueLimit: 2, Order: NewestFirst},
		"delegate-test",
		metrics.Config{Enabled: true, Registry: prometheus.NewRegistry()},
	)

	testutil.AssertEqual(t, limiter.Capacity(), 3)
	testutil.AssertEqual(t, limiter.Order(), NewestFirst)

	lease, err := limiter.TryAcquireN(2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, lease.Acquired(), true)
	testutil.AssertEqual(t, limiter.Available(), 1)

	waitLease, err := limiter.Acquire(context.Background())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, waitLease.Acquired(), true)
	testutil.AssertEqual(t, limiter.Available(), 0)

	// Exhausted: unacquired outcome flows through the wrapper unchanged
	denied, err := limiter.TryAcquire()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, denied.Acquired(), false)

	lease.Release()
	waitLease.Release()
	testutil.AssertEqual(t, limiter.Available(), 3)

	testutil.AssertNoError(t, limiter.Close())
	_, err = limiter.TryAcquire()
	testutil.AssertError(t, err)
}

func TestMetricsDisabledReturnsBase(t *testing.T) {
	limiter := NewWithConfigAndMetrics(
		Config{PermitLimit: 2},
		"disabled-test",
		metrics.Config{Enabled: false},
	)

	if _, ok := limiter.(*MetricsLimiter); ok {
		t.Error("disabled metrics should return the base limiter, not a wrapper")
	}
	testutil.AssertEqual(t, limiter.Capacity(), 2)
}

func TestMetricsEnableDisable(t *testing.T) {
	limiter := NewWithMetrics(2, "toggle-test")
	ml := limiter.(*MetricsLimiter)

	testutil.AssertEqual(t, ml.MetricsEnabled(), true)

	ml.DisableMetrics()
	testutil.AssertEqual(t, ml.MetricsEnabled(), false)

	// Operations keep working while metrics are off
	lease, err := ml.TryAcquire()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, lease.Acquired(), true)
	lease.Release()

	err = ml.EnableMetrics(metrics.Config{Enabled: true, Registry: prometheus.NewRegistry()})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ml.MetricsEnabled(), true)
}

func TestNewWithConfigAndMetricsPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on invalid config")
		}
	}()
	NewWithConfigAndMetrics(Config{PermitLimit: 0}, "bad", metrics.Config{Enabled: true, Registry: prometheus.NewRegistry()})
}
