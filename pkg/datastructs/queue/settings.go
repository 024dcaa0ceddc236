package queue

import (
	"github.com/huynhanx03/go-boundedqueue/pkg/settings"
)

// NewFromSettings creates a BoundedInt sized by cfg.Capacity.
func NewFromSettings(cfg settings.Queue) (*BoundedInt, error) {
	return NewBoundedInt(cfg.Capacity)
}
