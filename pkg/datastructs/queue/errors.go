package queue

import "github.com/pkg/errors"

var (
	// ErrInvalidCapacity is returned when a queue is constructed with capacity <= 0.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrQueueFull is returned when enqueuing onto a full queue.
	ErrQueueFull = errors.New("queue: queue is full")

	// ErrQueueEmpty is returned when dequeuing from an empty queue.
	ErrQueueEmpty = errors.New("queue: queue is empty")
)
