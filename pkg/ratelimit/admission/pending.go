package admission

import "sync/atomic"

const (
	statePending int32 = iota
	stateGranted
	stateRejected
)

// pending is a queued acquisition waiting for a release or cancellation.
//
// Its completion signal settles exactly once: the releasing side and the
// cancellation callback race to settle it, and the loser's attempt is a
// no-op. The result fields are published before done is closed, so a
// caller that has observed the close may read them without further
// synchronization.
type pending struct {
	count int
	state atomic.Int32
	lease *Lease // set on grant, before done is closed
	err   error  // set on rejection, before done is closed
	done  chan struct{}
	stop  func() bool // unregisters the cancellation callback
}

func newPending(count int) *pending {
	return &pending{
		count: count,
		done:  make(chan struct{}),
	}
}

// grant settles the request with a granted lease. It reports false if the
// request was already settled; the caller must then discard the lease and
// restore its tentatively consumed permits.
func (p *pending) grant(lease *Lease) bool {
	if !p.state.CompareAndSwap(statePending, stateGranted) {
		return false
	}
	p.lease = lease
	close(p.done)
	return true
}

// reject settles the request with an error. It reports false if the
// request was already settled.
func (p *pending) reject(err error) bool {
	if !p.state.CompareAndSwap(statePending, stateRejected) {
		return false
	}
	p.err = err
	close(p.done)
	return true
}
