package input

import (
	"time"

	"github.com/lixenwraith/vi-racer/physics"
)

// holdState tracks one key's emulated hold window
type holdState struct {
	action Action
	until  time.Time
}

// HoldTracker turns terminal press/auto-repeat events into held-key state
// A key is held until its window lapses without a new press: InitialHold after the
// first press covers the OS repeat delay, RepeatHold after each repeat
// Edge keys use RepeatHold throughout and fire again once a press lands outside it
type HoldTracker struct {
	bindings    *Bindings
	initialHold time.Duration
	repeatHold  time.Duration

	held map[string]holdState
}

// NewHoldTracker creates a tracker over the given bindings
func NewHoldTracker(b *Bindings, initialHold, repeatHold time.Duration) *HoldTracker {
	return &HoldTracker{
		bindings:    b,
		initialHold: initialHold,
		repeatHold:  repeatHold,
		held:        make(map[string]holdState),
	}
}

// Press records a key press at the given time
// Returns the intent of an edge action on its first press, IntentNone for repeats, held or unbound keys
func (h *HoldTracker) Press(key string, at time.Time) Intent {
	key = NormalizeKey(key)
	action := h.bindings.Lookup(key)
	if action == ActionNone {
		return IntentNone
	}

	st, ok := h.held[key]
	repeat := ok && at.Before(st.until)

	// Edge keys only debounce auto-repeat bursts so a deliberate double tap fires twice
	window := h.initialHold
	if repeat || !action.IsHeld() {
		window = h.repeatHold
	}
	h.held[key] = holdState{action: action, until: at.Add(window)}

	if action.IsHeld() {
		if !repeat {
			h.releaseOpposite(action)
		}
		return IntentNone
	}
	if repeat {
		return IntentNone
	}
	return IntentFor(action)
}

// Release drops a key immediately, for backends that do report releases
func (h *HoldTracker) Release(key string) {
	delete(h.held, NormalizeKey(key))
}

// Controls returns the held driving state at now, expiring lapsed keys
func (h *HoldTracker) Controls(now time.Time) physics.Controls {
	var c physics.Controls
	for key, st := range h.held {
		if !now.Before(st.until) {
			delete(h.held, key)
			continue
		}
		if st.action.IsHeld() {
			applyHeld(&c, st.action)
		}
	}
	return c
}

// Reset forgets all held keys
func (h *HoldTracker) Reset() {
	clear(h.held)
}

// releaseOpposite drops the counter-action, terminals auto-repeat only the newest key
func (h *HoldTracker) releaseOpposite(a Action) {
	var opposite Action
	switch a {
	case ActionAccelerate:
		opposite = ActionBrake
	case ActionBrake:
		opposite = ActionAccelerate
	case ActionSteerLeft:
		opposite = ActionSteerRight
	case ActionSteerRight:
		opposite = ActionSteerLeft
	default:
		return
	}
	for key, st := range h.held {
		if st.action == opposite {
			delete(h.held, key)
		}
	}
}
