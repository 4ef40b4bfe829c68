/*
Package gopermit provides concurrency admission control for Go services.

An admission limiter bounds how many permits (units of concurrent work) may
be outstanding at once, optionally queueing excess requests up to a bounded
depth. It is the building block servers and middleware use to throttle
concurrent request processing under load.

Admission Control (pkg/ratelimit):
  - admission: Permit-based concurrency limiting with bounded queueing,
    oldest-first or newest-first service order, and lease-based release

Supporting packages:
  - pkg/common/deque: O(1) double-ended queue used for waiter storage
  - pkg/common/errors: Error types shared across the library
  - pkg/metrics: Prometheus instrumentation

Example usage:

	import "github.com/vnykmshr/gopermit/pkg/ratelimit/admission"

	limiter, _ := admission.NewSafe(100) // 100 concurrent operations

	lease, err := limiter.TryAcquire()
	if err == nil && lease.Acquired() {
		defer lease.Release()
		// Do work
	}
*/
package gopermit
