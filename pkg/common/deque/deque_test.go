package deque

import "testing"

func TestEmptyDeque(t *testing.T) {
	var d Deque[int]

	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
	if _, ok := d.Front(); ok {
		t.Error("Front() on empty deque should report false")
	}
	if _, ok := d.Back(); ok {
		t.Error("Back() on empty deque should report false")
	}
	if _, ok := d.PopFront(); ok {
		t.Error("PopFront() on empty deque should report false")
	}
	if _, ok := d.PopBack(); ok {
		t.Error("PopBack() on empty deque should report false")
	}
}

func TestPushBackPopFront(t *testing.T) {
	var d Deque[int]

	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	if d.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", d.Len())
	}

	for want := 1; want <= 5; want++ {
		got, ok := d.PopFront()
		if !ok {
			t.Fatalf("PopFront() reported empty at element %d", want)
		}
		if got != want {
			t.Errorf("PopFront() = %d, want %d", got, want)
		}
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d after draining, want 0", d.Len())
	}
}

func TestPushBackPopBack(t *testing.T) {
	var d Deque[int]

	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}

	for want := 5; want >= 1; want-- {
		got, ok := d.PopBack()
		if !ok {
			t.Fatalf("PopBack() reported empty at element %d", want)
		}
		if got != want {
			t.Errorf("PopBack() = %d, want %d", got, want)
		}
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	var d Deque[string]

	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")

	if v, _ := d.Front(); v != "a" {
		t.Errorf("Front() = %q, want %q", v, "a")
	}
	if v, _ := d.Back(); v != "c" {
		t.Errorf("Back() = %q, want %q", v, "c")
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d after peeking, want 3", d.Len())
	}
}

func TestWraparound(t *testing.T) {
	var d Deque[int]

	// Shift the head away from the buffer start, then force the tail to
	// wrap past the end.
	for i := 0; i < minCapacity; i++ {
		d.PushBack(i)
	}
	for i := 0; i < minCapacity/2; i++ {
		d.PopFront()
	}
	for i := minCapacity; i < minCapacity+minCapacity/2; i++ {
		d.PushBack(i)
	}

	want := minCapacity / 2
	for d.Len() > 0 {
		got, _ := d.PopFront()
		if got != want {
			t.Fatalf("PopFront() = %d, want %d", got, want)
		}
		want++
	}
}

func TestGrowth(t *testing.T) {
	var d Deque[int]

	const n = 1000
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	if d.Len() != n {
		t.Fatalf("Len() = %d, want %d", d.Len(), n)
	}

	// Order must survive reallocation.
	for want := 0; want < n; want++ {
		got, _ := d.PopFront()
		if got != want {
			t.Fatalf("PopFront() = %d, want %d", got, want)
		}
	}
}

func TestGrowthWithShiftedHead(t *testing.T) {
	var d Deque[int]

	for i := 0; i < minCapacity; i++ {
		d.PushBack(i)
	}
	d.PopFront()
	d.PopFront()
	d.PushBack(minCapacity)
	d.PushBack(minCapacity + 1)

	// Deque is full with a non-zero head; the next push must reallocate
	// and preserve order.
	d.PushBack(minCapacity + 2)

	want := 2
	for d.Len() > 0 {
		got, _ := d.PopFront()
		if got != want {
			t.Fatalf("PopFront() = %d, want %d", got, want)
		}
		want++
	}
}

func TestMixedEnds(t *testing.T) {
	var d Deque[int]

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	if v, _ := d.PopBack(); v != 3 {
		t.Errorf("PopBack() = %d, want 3", v)
	}
	if v, _ := d.PopFront(); v != 1 {
		t.Errorf("PopFront() = %d, want 1", v)
	}
	if v, _ := d.PopBack(); v != 2 {
		t.Errorf("PopBack() = %d, want 2", v)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}
