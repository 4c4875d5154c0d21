package utils

import (
	"sync/atomic"
	"time"
)

// MonotonicClock derives timestamps from the wall clock but never returns a
// value smaller than one it has already returned, so a wall clock stepping
// backwards cannot reorder creation and update stamps.
type MonotonicClock struct {
	last atomic.Uint64
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

func (c *MonotonicClock) Now() uint64 {
	now := uint64(time.Now().UnixNano())
	for {
		last := c.last.Load()
		if now <= last {
			return last
		}
		if c.last.CompareAndSwap(last, now) {
			return now
		}
	}
}
