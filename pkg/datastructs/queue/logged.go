package queue

import "go.uber.org/zap"

var _ Queue = (*Logged)(nil)

// Logged reports boundary failures of a Queue to a zap logger at Debug level.
// Successful operations are not logged. Errors are returned unchanged.
type Logged struct {
	inner  Queue
	logger *zap.Logger
}

// NewLogged wraps q. A nil logger is replaced with zap.NewNop().
func NewLogged(q Queue, logger *zap.Logger) *Logged {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logged{inner: q, logger: logger.Named("queue")}
}

func (l *Logged) Capacity() int { return l.inner.Capacity() }
func (l *Logged) Size() int     { return l.inner.Size() }
func (l *Logged) IsEmpty() bool { return l.inner.IsEmpty() }
func (l *Logged) IsFull() bool  { return l.inner.IsFull() }

// Enqueue forwards to the wrapped queue and logs a rejected item.
func (l *Logged) Enqueue(item int) error {
	err := l.inner.Enqueue(item)
	if err != nil {
		l.logger.Debug("enqueue rejected",
			zap.Int("item", item),
			zap.Int("capacity", l.inner.Capacity()),
			zap.Int("size", l.inner.Size()),
			zap.Error(err),
		)
	}
	return err
}

// Dequeue forwards to the wrapped queue and logs a failed removal.
func (l *Logged) Dequeue() (int, error) {
	item, err := l.inner.Dequeue()
	if err != nil {
		l.logger.Debug("dequeue rejected",
			zap.Int("capacity", l.inner.Capacity()),
			zap.Int("size", l.inner.Size()),
			zap.Error(err),
		)
	}
	return item, err
}
