package queue

// Queue is a fixed-capacity FIFO queue of ints.
type Queue interface {
	// Capacity returns the maximum number of items the queue can hold.
	Capacity() int

	// Size returns the current item count.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// IsFull reports whether Size() >= Capacity().
	IsFull() bool

	// Enqueue adds an item at the tail.
	// Returns ErrQueueFull if the queue is full; the queue is left unchanged.
	Enqueue(item int) error

	// Dequeue removes and returns the item at the head.
	// Returns ErrQueueEmpty if the queue is empty; the queue is left unchanged.
	Dequeue() (int, error)
}
