/*
Package ratelimit provides admission-control primitives for Go applications.

This package currently offers one limiter family:

  - admission: Permit-based concurrency limiter with bounded queueing

The admission limiter bounds concurrent work rather than request rate:

	limiter, err := admission.NewWithConfigSafe(admission.Config{
		PermitLimit: 10,
		QueueLimit:  50,
	})
	if err != nil {
		log.Fatal(err)
	}

	lease, err := limiter.Acquire(ctx)
	if err == nil && lease.Acquired() {
		defer lease.Release()
		// Process request
	}

The limiter supports:
  - Non-blocking attempts (TryAcquire/TryAcquireN)
  - Context-aware queued acquisition (Acquire/AcquireN)
  - Oldest-first or newest-first service order
  - Lease-based release and comprehensive state inspection

All limiters are safe for concurrent use and integrate with the context
package for cancellation and timeouts.
*/
package ratelimit
