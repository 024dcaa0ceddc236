package queue

import (
	"github.com/pkg/errors"
)

var _ Queue = (*BoundedInt)(nil)

// BoundedInt is a fixed-capacity FIFO queue of ints backed by a ring.
// The ring is allocated lazily and grows up to the capacity, so large
// capacities cost nothing until items arrive.
//
// It is NOT thread-safe. Callers sharing a BoundedInt across goroutines
// must serialize every call, see Locked.
type BoundedInt struct {
	buf      []int
	capacity int
	head     int // index of the oldest item
	size     int
}

// NewBoundedInt creates an empty queue holding at most capacity items.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewBoundedInt(capacity int) (*BoundedInt, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &BoundedInt{capacity: capacity}, nil
}

// Capacity returns the maximum queue size.
func (q *BoundedInt) Capacity() int { return q.capacity }

// Size returns the number of queued items.
func (q *BoundedInt) Size() int { return q.size }

// IsEmpty returns true if the queue holds no items.
func (q *BoundedInt) IsEmpty() bool { return q.size == 0 }

// IsFull returns true if the queue holds Capacity() items.
func (q *BoundedInt) IsFull() bool { return q.size >= q.capacity }

// Enqueue appends item at the tail. Returns ErrQueueFull if the queue is full.
func (q *BoundedInt) Enqueue(item int) error {
	if q.IsFull() {
		return ErrQueueFull
	}
	if q.size == len(q.buf) {
		q.grow()
	}

	q.buf[q.wrapIndex(q.head+q.size)] = item
	q.size++
	return nil
}

// Dequeue removes and returns the head item. Returns ErrQueueEmpty if the queue is empty.
func (q *BoundedInt) Dequeue() (int, error) {
	if q.IsEmpty() {
		return 0, ErrQueueEmpty
	}

	item := q.buf[q.head]
	q.buf[q.head] = 0
	q.head = q.wrapIndex(q.head + 1)
	q.size--
	if q.size == 0 {
		q.head = 0
	}
	return item, nil
}

// Peek returns the head item without removing it.
func (q *BoundedInt) Peek() (int, error) {
	if q.IsEmpty() {
		return 0, ErrQueueEmpty
	}
	return q.buf[q.head], nil
}

// EnqueueBatch enqueues items in order until the queue fills up.
// Returns the count enqueued, and ErrQueueFull if not all items fit.
func (q *BoundedInt) EnqueueBatch(items []int) (int, error) {
	for i, item := range items {
		if err := q.Enqueue(item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// DequeueBatch dequeues into out in FIFO order until out is full or the
// queue is empty. Returns the count dequeued, and ErrQueueEmpty if out
// could not be filled.
func (q *BoundedInt) DequeueBatch(out []int) (int, error) {
	for i := range out {
		item, err := q.Dequeue()
		if err != nil {
			return i, err
		}
		out[i] = item
	}
	return len(out), nil
}

// Values returns a copy of the queued items, head first.
func (q *BoundedInt) Values() []int {
	if q.IsEmpty() {
		return nil
	}
	result := make([]int, q.size)
	q.copyTo(result)
	return result
}

// Clear drops all items. The backing ring is retained for reuse.
func (q *BoundedInt) Clear() {
	clear(q.buf)
	q.head = 0
	q.size = 0
}

// wrapIndex maps a logical position onto the ring.
// idx is always below 2*len(q.buf).
func (q *BoundedInt) wrapIndex(idx int) int {
	if idx >= len(q.buf) {
		return idx - len(q.buf)
	}
	return idx
}

// copyTo copies the queued items into dst in FIFO order.
func (q *BoundedInt) copyTo(dst []int) {
	if q.head+q.size <= len(q.buf) {
		copy(dst, q.buf[q.head:q.head+q.size])
		return
	}
	n := copy(dst, q.buf[q.head:])
	copy(dst[n:], q.buf[:q.size-n])
}

// grow expands the ring, keeping the items in order from index 0.
func (q *BoundedInt) grow() {
	newBuf := make([]int, q.calculateGrowth())
	q.copyTo(newBuf)
	q.buf = newBuf
	q.head = 0
}

// calculateGrowth returns the next ring size, never above capacity.
func (q *BoundedInt) calculateGrowth() int {
	oldCap := len(q.buf)

	// Initial allocation
	if oldCap == 0 {
		return min(defaultInitialSlots, q.capacity)
	}

	// Double small rings, grow large rings by 25%.
	step := oldCap
	if oldCap >= growThreshold {
		step = oldCap / 4
	}
	if step >= q.capacity-oldCap {
		return q.capacity
	}
	return oldCap + step
}
