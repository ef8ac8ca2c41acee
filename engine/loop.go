package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/physics"
)

// Driver is a presentation backend driven by RunLoop
type Driver interface {
	// Poll returns held controls and edge intents for the coming frame
	Poll() (physics.Controls, []input.Intent, error)
	// Present shows a frame
	Present(Snapshot) error
}

// LoopConfig configures RunLoop
type LoopConfig struct {
	Session *Session
	// FPS paces the loop with a ticker, 0 runs unpaced
	FPS int
	// MaxFrames stops the loop after this many frames, 0 is unlimited
	MaxFrames uint64
	// FixedDelta overrides measured frame time for physics in seconds, for deterministic replays
	// FPS still follows the measured time
	FixedDelta float64
	// Time measures real frame time, nil uses the monotonic clock
	Time TimeProvider
}

// RunLoop drives the session until ctx is cancelled, the session quits, the frame budget
// runs out or the driver fails
func RunLoop(ctx context.Context, cfg LoopConfig, d Driver) error {
	tp := cfg.Time
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}

	var tick <-chan time.Time
	if cfg.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	s := cfg.Session
	last := tp.Now()
	var frames uint64

	for !s.Done() {
		if cfg.MaxFrames > 0 && frames >= cfg.MaxFrames {
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		now := tp.Now()
		elapsed := now.Sub(last).Seconds()
		last = now
		dt := elapsed
		if cfg.FixedDelta > 0 {
			dt = cfg.FixedDelta
		}

		controls, intents, err := d.Poll()
		if err != nil {
			return err
		}

		snap := s.FrameTimed(dt, elapsed, controls, intents)
		frames++

		if err := d.Present(snap); err != nil {
			return err
		}
	}
	return nil
}
