/*
Package admission provides permit-based concurrency admission control.

An admission limiter bounds how many permits (units of concurrent work)
may be outstanding at once. Requests that cannot be granted immediately
may wait in a bounded queue, serviced oldest-first or newest-first when
permits are released. The result of every attempt is a Lease; releasing a
granted lease returns its permits and drains the queue.

Basic usage:

	limiter, err := admission.NewSafe(10) // Allow 10 concurrent operations
	if err != nil {
		log.Fatal(err)
	}

	lease, err := limiter.TryAcquire()
	if err == nil && lease.Acquired() {
		defer lease.Release()
		// Do work
	}

Key Features:

The admission limiter provides:
  - Non-blocking permit acquisition (TryAcquire/TryAcquireN)
  - Context-aware queued acquisition (Acquire/AcquireN)
  - Bounded queueing with a distinguished queue-limit rejection
  - Oldest-first (fair) or newest-first (line-jumping) service order
  - Lease-based release that is idempotent and safe after Close
  - Cooperative cancellation of queued waiters

Queueing:

	limiter, err := admission.NewWithConfigSafe(admission.Config{
		PermitLimit: 5,
		QueueLimit:  20,
		Order:       admission.OldestFirst,
	})
	if err != nil {
		log.Fatal(err)
	}

	lease, err := limiter.Acquire(ctx)
	if err != nil {
		return err // canceled while queued, or limiter closed
	}
	if !lease.Acquired() {
		if reason, ok := lease.Reason(); ok {
			return fmt.Errorf("shed load: %s", reason) // queue limit reached
		}
		return errNoCapacity
	}
	defer lease.Release()

Service Order:

Under OldestFirst, waiters are serviced strictly in arrival order and a
fresh request never cuts ahead of the queue: while waiters exist it must
queue or fail. Under NewestFirst, a fresh request serviceable from current
permits succeeds immediately even while older requests wait, and releases
service the queue from its newest end. NewestFirst trades fairness for
latency of the most recent callers and has no starvation bound.

HTTP Server Limiting:

	requestLimiter, err := admission.NewWithConfigSafe(admission.Config{
		PermitLimit: 1000,
		QueueLimit:  500,
	})
	if err != nil {
		log.Fatal(err)
	}

	func handler(w http.ResponseWriter, r *http.Request) {
		lease, err := requestLimiter.Acquire(r.Context())
		if err != nil || !lease.Acquired() {
			http.Error(w, "Server busy", http.StatusTooManyRequests)
			return
		}
		defer lease.Release()

		handleRequest(w, r)
	}

Batch Operations:

	lease, err := limiter.TryAcquireN(batchSize)
	if err == nil && lease.Acquired() {
		defer lease.Release()
		processBatch(batch)
	}

Zero-Count Probes:

Requesting zero permits is a peek, not a hold: it succeeds while any
permit is available and never mutates the limiter's counters.

Error Handling:

Acquisition returns an error for:
  - A requested count that is negative or exceeds the permit limit
    (a ValidationError from pkg/common/errors)
  - A context canceled before or while the request was queued
  - A limiter that has been closed (errors.ErrClosed)

Capacity exhaustion and queue-limit rejection are not errors: they are
unacquired leases, distinguished by Lease.Reason.

Thread Safety:

All operations are safe for concurrent use. A single mutex guards the
permit and queue state; waiting consumes no goroutine inside the limiter,
and a queued waiter is settled exactly once even when a release races its
cancellation.
*/
package admission
