package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time, frozen while paused
type PausableClock struct {
	mu sync.RWMutex

	real  TimeProvider
	start time.Time

	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewPausableClock creates a running clock reading real time from tp
func NewPausableClock(tp TimeProvider) *PausableClock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		real:  tp,
		start: tp.Now(),
	}
}

// Elapsed returns game time since the clock started, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.real.Now()
	if pc.paused {
		now = pc.pausedAt
	}
	return now.Sub(pc.start) - pc.pausedTotal
}

// RealTime returns the provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.real.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.real.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips pause state, returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedTotal
	if pc.paused {
		total += pc.real.Now().Sub(pc.pausedAt)
	}
	return total
}
