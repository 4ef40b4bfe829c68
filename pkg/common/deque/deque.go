// Package deque provides a double-ended queue backed by a ring buffer.
//
// The admission limiter uses it to store queued waiters: insertion is
// always at the tail, while the service end depends on the configured
// processing order.
package deque

const minCapacity = 8

// Deque is a double-ended queue with amortized O(1) push, pop, and peek at
// both ends. The zero value is an empty deque ready for use.
//
// Deque is not safe for concurrent use; callers must provide their own
// synchronization.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// Len returns the number of elements currently stored.
func (d *Deque[T]) Len() int {
	return d.count
}

// PushBack appends v at the tail.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.index(d.count)] = v
	d.count++
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.index(d.count-1)], true
}

// PopFront removes and returns the head element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.index(1)
	d.count--
	return v, true
}

// PopBack removes and returns the tail element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := d.index(d.count - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.count--
	return v, true
}

// index maps a logical offset from the head to a buffer position.
func (d *Deque[T]) index(offset int) int {
	return (d.head + offset) % len(d.buf)
}

// grow ensures room for one more element, doubling the buffer when full.
func (d *Deque[T]) grow() {
	if len(d.buf) == 0 {
		d.buf = make([]T, minCapacity)
		return
	}
	if d.count < len(d.buf) {
		return
	}
	buf := make([]T, 2*len(d.buf))
	n := copy(buf, d.buf[d.head:])
	copy(buf[n:], d.buf[:d.head])
	d.head = 0
	d.buf = buf
}
