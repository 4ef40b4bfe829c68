package admission

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/vnykmshr/gopermit/pkg/common/deque"
	"github.com/vnykmshr/gopermit/pkg/common/errors"
	"github.com/vnykmshr/gopermit/pkg/common/validation"
)

// Order selects which end of the wait queue is serviced when permits are
// released, and whether fresh requests may bypass the queue.
type Order int

const (
	// OldestFirst services waiters in arrival order. A fresh request never
	// cuts ahead of queued waiters: while the queue is non-empty it must
	// queue or fail rather than acquire directly.
	OldestFirst Order = iota

	// NewestFirst gives the newest caller priority. A fresh request may
	// acquire directly even while older requests wait, and releases
	// service the queue from its tail. Provides no starvation bound for
	// long-queued waiters.
	NewestFirst
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case OldestFirst:
		return "oldest-first"
	case NewestFirst:
		return "newest-first"
	default:
		return "unknown"
	}
}

// Limiter bounds how many permits (units of concurrent work) may be held
// at once. Requests that cannot be granted immediately may wait in a
// bounded queue; a granted Lease returns its permits when released.
type Limiter interface {
	// TryAcquire attempts to acquire one permit. It never blocks and
	// never queues: the returned lease is either granted now or
	// unacquired.
	TryAcquire() (*Lease, error)

	// TryAcquireN attempts to acquire n permits without blocking or
	// queueing. It returns a ValidationError if n is negative or exceeds
	// the permit limit, and ErrClosed after Close.
	TryAcquireN(n int) (*Lease, error)

	// Acquire acquires one permit, waiting behind queued requests if
	// necessary. It blocks until the permit is granted, the queue limit
	// rejects the request, ctx is canceled, or the limiter is closed.
	Acquire(ctx context.Context) (*Lease, error)

	// AcquireN acquires n permits, waiting if necessary. A request that
	// would push the cumulative queued count past the queue limit
	// resolves immediately with an unacquired lease whose Reason reports
	// the rejection.
	AcquireN(ctx context.Context, n int) (*Lease, error)

	// Capacity returns the configured permit limit.
	Capacity() int

	// Available returns the number of permits currently available. The
	// value is advisory: it is read without the limiter lock and may be
	// stale as soon as it is returned.
	Available() int

	// Queued returns the cumulative permit count requested by queued
	// waiters.
	Queued() int

	// Order returns the configured service order.
	Order() Order

	// Close rejects every queued waiter with ErrClosed and makes
	// subsequent acquisitions fail. Close is idempotent. Leases granted
	// before Close remain valid and may still be released safely.
	Close() error
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// PermitLimit is the maximum number of permits that may be held
	// concurrently. Must be positive.
	PermitLimit int

	// QueueLimit is the maximum cumulative permit count that may wait in
	// the queue. Zero disables queueing: unservicable requests resolve
	// immediately.
	QueueLimit int

	// Order selects which end of the queue is serviced on release and
	// whether fresh requests may bypass queued waiters.
	Order Order
}

// admissionLimiter implements the Limiter interface.
//
// A single mutex guards all mutable state. The available-permit counter is
// stored atomically so the optimistic pre-checks and the advisory
// Available read can skip the lock; every accepted pre-check is
// re-verified under the lock before permits change hands.
type admissionLimiter struct {
	permitLimit int
	queueLimit  int
	order       Order

	mu     sync.Mutex
	avail  atomic.Int64 // mutated only with mu held
	queued int
	queue  deque.Deque[*pending]
	closed atomic.Bool // set only with mu held
}

// NewSafe creates an oldest-first limiter allowing permitLimit concurrent
// permits with queueing disabled. It returns an error instead of panicking
// on invalid input.
func NewSafe(permitLimit int) (Limiter, error) {
	return NewWithConfigSafe(Config{PermitLimit: permitLimit})
}

// NewWithConfigSafe creates a new admission limiter with validation that
// returns an error instead of panicking. This is the recommended way to
// create admission limiters for production use.
func NewWithConfigSafe(config Config) (Limiter, error) {
	if err := validation.ValidatePositive("admission", "permitLimit", config.PermitLimit); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegative("admission", "queueLimit", config.QueueLimit); err != nil {
		return nil, err
	}
	if config.Order != OldestFirst && config.Order != NewestFirst {
		return nil, errors.NewValidationError("admission", "order", int(config.Order), "unknown service order").
			WithHint("use OldestFirst or NewestFirst")
	}

	l := &admissionLimiter{
		permitLimit: config.PermitLimit,
		queueLimit:  config.QueueLimit,
		order:       config.Order,
	}
	l.avail.Store(int64(config.PermitLimit))
	return l, nil
}
