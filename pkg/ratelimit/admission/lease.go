package admission

import "sync/atomic"

// ReasonQueueLimit is the failure reason reported when a request was
// rejected because admitting it would exceed the queue limit.
const ReasonQueueLimit = "queue limit reached"

// Lease is the result of an acquisition attempt. A granted lease holds its
// permits until Release is called; releasing returns the permits to the
// limiter and services the wait queue.
type Lease struct {
	acquired bool
	count    int
	reason   string
	limiter  *admissionLimiter // nil unless granted with count > 0
	released atomic.Bool
}

// Shared results for outcomes that carry no per-call state.
var (
	unacquiredLease = &Lease{}
	queueLimitLease = &Lease{reason: ReasonQueueLimit}
	zeroLease       = &Lease{acquired: true}
)

func newLease(l *admissionLimiter, count int) *Lease {
	return &Lease{
		acquired: true,
		count:    count,
		limiter:  l,
	}
}

// Acquired reports whether the permits were granted.
func (le *Lease) Acquired() bool {
	return le.acquired
}

// Count returns the number of permits held by the lease.
func (le *Lease) Count() int {
	return le.count
}

// Reason returns the failure reason, if one was recorded when the lease
// was created. It remains queryable after Release.
func (le *Lease) Reason() (string, bool) {
	return le.reason, le.reason != ""
}

// Release returns the lease's permits to the limiter and services the wait
// queue. Release is idempotent: only the first call returns permits.
// Leases that hold no permits, including every unacquired lease, no-op.
// Releasing after the limiter has been closed is safe.
func (le *Lease) Release() {
	if le.limiter == nil {
		return
	}
	if le.released.CompareAndSwap(false, true) {
		le.limiter.release(le.count)
	}
}
