package queue

import "sync"

var _ Queue = (*Locked)(nil)

// Locked serializes access to a Queue with a mutex owned by the wrapper.
// Each method is a single critical section. Use Do for check-then-act
// sequences that must not interleave with other callers.
// It is safe for concurrent use.
type Locked struct {
	mu    sync.Mutex
	inner Queue
}

// NewLocked wraps q. All access to q must go through the returned Locked.
func NewLocked(q Queue) *Locked {
	return &Locked{inner: q}
}

// Capacity returns the wrapped queue's capacity.
func (l *Locked) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Capacity()
}

// Size returns the wrapped queue's size.
func (l *Locked) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Size()
}

// IsEmpty reports whether the wrapped queue is empty.
func (l *Locked) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IsEmpty()
}

// IsFull reports whether the wrapped queue is full.
func (l *Locked) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IsFull()
}

// Enqueue appends item under the lock.
func (l *Locked) Enqueue(item int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Enqueue(item)
}

// Dequeue removes the head item under the lock.
func (l *Locked) Dequeue() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Dequeue()
}

// Do runs fn with exclusive access to the wrapped queue.
// fn must use the queue it is given, not l, or it will deadlock.
func (l *Locked) Do(fn func(q Queue) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.inner)
}
