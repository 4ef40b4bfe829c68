// Package metrics provides Prometheus instrumentation for gopermit components.
//
// This package enables monitoring and observability for the admission
// limiter through Prometheus metrics.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	limiter := admission.NewWithMetrics(100, "api_requests")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	limiter := admission.NewWithConfigAndMetrics(
//		admission.Config{PermitLimit: 100, QueueLimit: 50},
//		"custom_limiter",
//		config,
//	)
//
// # Available Metrics
//
//   - gopermit_admission_requests_total: Total number of admission requests
//   - gopermit_admission_acquired_total: Total number of granted acquisitions
//   - gopermit_admission_denied_total: Total number of denied acquisitions
//   - gopermit_admission_wait_duration_seconds: Time spent waiting for permits
//   - gopermit_admission_active_permits: Permits held by outstanding leases
//   - gopermit_admission_queued_permits: Permit count requested by queued waiters
//
// # Labels
//
//   - limiter_name: User-provided name for the limiter instance
//   - mode: "try" for non-blocking attempts, "wait" for queued acquisition
//   - reason: Denial reason ("unacquired", "queue_limit", "canceled",
//     "invalid", "closed")
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	limiter := admission.NewWithMetrics(100, "api")
//	limiter.(*admission.MetricsLimiter).DisableMetrics()
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
