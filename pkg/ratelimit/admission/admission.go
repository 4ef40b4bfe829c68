package admission

import (
	"context"

	"github.com/vnykmshr/gopermit/pkg/common/errors"
)

// TryAcquire attempts to acquire one permit without blocking.
func (al *admissionLimiter) TryAcquire() (*Lease, error) {
	return al.TryAcquireN(1)
}

// TryAcquireN attempts to acquire n permits without blocking.
func (al *admissionLimiter) TryAcquireN(n int) (*Lease, error) {
	if err := al.checkCount(n); err != nil {
		return nil, err
	}
	if al.closed.Load() {
		return nil, errors.ErrClosed
	}

	// A zero-count request is a peek, not a hold: it succeeds while any
	// permit is available and never mutates the counters.
	if n == 0 {
		if al.avail.Load() > 0 {
			return zeroLease, nil
		}
		return unacquiredLease, nil
	}

	// Optimistic pre-check to skip the lock on the common failure path.
	// An accepted pre-check is re-verified under the lock.
	if int(al.avail.Load()) < n {
		return unacquiredLease, nil
	}

	al.mu.Lock()
	defer al.mu.Unlock()

	if al.closed.Load() {
		return nil, errors.ErrClosed
	}
	if al.grantableLocked(n) {
		al.avail.Add(int64(-n))
		return newLease(al, n), nil
	}
	return unacquiredLease, nil
}

// Acquire acquires one permit, waiting behind queued requests if necessary.
func (al *admissionLimiter) Acquire(ctx context.Context) (*Lease, error) {
	return al.AcquireN(ctx, 1)
}

// AcquireN acquires n permits, waiting if necessary. The wait consumes no
// goroutine inside the limiter: the caller parks on the request's
// completion signal until a release or cancellation settles it.
func (al *admissionLimiter) AcquireN(ctx context.Context, n int) (*Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := al.checkCount(n); err != nil {
		return nil, err
	}
	if al.closed.Load() {
		return nil, errors.ErrClosed
	}
	if n == 0 && al.avail.Load() > 0 {
		return zeroLease, nil
	}

	al.mu.Lock()

	if al.closed.Load() {
		al.mu.Unlock()
		return nil, errors.ErrClosed
	}
	if al.grantableLocked(n) {
		al.avail.Add(int64(-n))
		al.mu.Unlock()
		if n == 0 {
			return zeroLease, nil
		}
		return newLease(al, n), nil
	}
	if al.queued+n > al.queueLimit {
		al.mu.Unlock()
		return queueLimitLease, nil
	}

	p := newPending(n)
	p.stop = context.AfterFunc(ctx, func() {
		// Race with the drain loop: whoever settles first wins, the
		// loser's attempt is a no-op.
		p.reject(context.Cause(ctx))
	})
	al.queue.PushBack(p)
	al.queued += n
	al.mu.Unlock()

	<-p.done
	if p.lease != nil {
		return p.lease, nil
	}
	return nil, p.err
}

// grantableLocked reports whether n permits can be granted right now.
// Under OldestFirst a fresh request must not jump ahead of queued waiters;
// under NewestFirst the newest caller wins admission even while older
// requests wait.
func (al *admissionLimiter) grantableLocked(n int) bool {
	avail := int(al.avail.Load())
	return avail >= n && avail != 0 && (al.queue.Len() == 0 || al.order == NewestFirst)
}

// checkCount validates a requested permit count against the limiter's
// configuration. No state is mutated before this check fires.
func (al *admissionLimiter) checkCount(n int) error {
	if n < 0 {
		return errors.NewValidationError("admission", "count", n, "cannot be negative")
	}
	if n > al.permitLimit {
		return errors.NewValidationError("admission", "count", n, "exceeds permit limit").
			WithHint("request at most the configured permit limit")
	}
	return nil
}

// release returns n permits to the limiter and services the queue. Called
// exactly once per granted lease, from Lease.Release.
func (al *admissionLimiter) release(n int) {
	al.mu.Lock()
	defer al.mu.Unlock()

	if al.avail.Add(int64(n)) > int64(al.permitLimit) {
		panic("admission: released more permits than acquired")
	}
	if al.closed.Load() {
		return
	}
	al.drainLocked()
}

// drainLocked services queued waiters until the next candidate in service
// order needs more permits than are available. Since permits do not
// increase within the loop, no later candidate could be serviced either
// once it stops. The loop is bounded by the queue length at entry.
func (al *admissionLimiter) drainLocked() {
	for al.queue.Len() > 0 {
		next, _ := al.peekLocked()
		if int(al.avail.Load()) < next.count {
			break
		}
		p, _ := al.popLocked()
		al.queued -= p.count

		// A zero-count waiter settles with a non-counted success and
		// performs no permit arithmetic.
		if p.count == 0 {
			p.grant(zeroLease)
			p.stop()
			continue
		}

		al.avail.Add(int64(-p.count))
		if !p.grant(newLease(al, p.count)) {
			// Lost the race to cancellation: restore the tentatively
			// consumed permits and keep draining.
			al.avail.Add(int64(p.count))
		}
		p.stop()
	}
}

// peekLocked returns the next service candidate without removing it:
// the queue head under OldestFirst, the tail under NewestFirst.
func (al *admissionLimiter) peekLocked() (*pending, bool) {
	if al.order == NewestFirst {
		return al.queue.Back()
	}
	return al.queue.Front()
}

func (al *admissionLimiter) popLocked() (*pending, bool) {
	if al.order == NewestFirst {
		return al.queue.PopBack()
	}
	return al.queue.PopFront()
}

// Close rejects every queued waiter with ErrClosed and makes subsequent
// acquisitions fail. Leases granted before Close may still be released.
func (al *admissionLimiter) Close() error {
	al.mu.Lock()
	defer al.mu.Unlock()

	if al.closed.Load() {
		return nil
	}
	al.closed.Store(true)

	for {
		p, ok := al.queue.PopFront()
		if !ok {
			break
		}
		p.reject(errors.ErrClosed)
		p.stop()
	}
	al.queued = 0
	return nil
}

// Capacity returns the configured permit limit.
func (al *admissionLimiter) Capacity() int {
	return al.permitLimit
}

// Available returns the number of permits currently available. The read
// takes no lock, so the value may be stale immediately.
func (al *admissionLimiter) Available() int {
	return int(al.avail.Load())
}

// Queued returns the cumulative permit count requested by queued waiters.
func (al *admissionLimiter) Queued() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return al.queued
}

// Order returns the configured service order.
func (al *admissionLimiter) Order() Order {
	return al.order
}
