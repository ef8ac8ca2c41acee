package engine

import (
	"sync"
	"time"
)

// FrameClock is a hand-driven TimeProvider for tests and replays
// With a non-zero step every Now call returns the current instant and then moves one step on,
// so a loop reading it once per frame sees a fixed frame cadence
type FrameClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewFrameClock(start time.Time, step time.Duration) *FrameClock {
	return &FrameClock{now: start, step: step}
}

// NewFrameClockFPS steps one frame of the given rate per reading
func NewFrameClockFPS(start time.Time, fps int) *FrameClock {
	var step time.Duration
	if fps > 0 {
		step = time.Second / time.Duration(fps)
	}
	return NewFrameClock(start, step)
}

func (c *FrameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Set jumps to t
func (c *FrameClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d, independent of the step
func (c *FrameClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
