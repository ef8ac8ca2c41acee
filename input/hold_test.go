package input

import (
	"testing"
	"time"
)

const (
	testInitial = 500 * time.Millisecond
	testRepeat  = 100 * time.Millisecond
)

func newTestTracker() (*HoldTracker, time.Time) {
	return NewHoldTracker(DefaultBindings(), testInitial, testRepeat), time.Unix(1000, 0)
}

func TestHoldTracker_FirstPressCoversRepeatDelay(t *testing.T) {
	h, t0 := newTestTracker()
	h.Press("w", t0)

	if c := h.Controls(t0.Add(400 * time.Millisecond)); !c.Forward {
		t.Error("expected forward held inside initial window")
	}
	if c := h.Controls(t0.Add(testInitial)); c.Forward {
		t.Error("expected forward released after initial window")
	}
}

func TestHoldTracker_RepeatsExtendByRepeatWindow(t *testing.T) {
	h, t0 := newTestTracker()
	h.Press("a", t0)
	at := t0.Add(450 * time.Millisecond)
	h.Press("a", at)

	if c := h.Controls(at.Add(90 * time.Millisecond)); !c.Left {
		t.Error("expected left held after repeat")
	}
	if c := h.Controls(at.Add(testRepeat)); c.Left {
		t.Error("expected left released once repeats stop")
	}
}

func TestHoldTracker_EdgeIntentsFireOnce(t *testing.T) {
	h, t0 := newTestTracker()

	if got := h.Press("c", t0); got != IntentToggleCamera {
		t.Errorf("first press: got %v", got)
	}
	if got := h.Press("c", t0.Add(50*time.Millisecond)); got != IntentNone {
		t.Errorf("auto-repeat should not re-fire, got %v", got)
	}
	if got := h.Press("c", t0.Add(time.Second)); got != IntentToggleCamera {
		t.Errorf("press after window lapse should fire, got %v", got)
	}
	if got := h.Press("w", t0); got != IntentNone {
		t.Errorf("held action should not produce intent, got %v", got)
	}
	if got := h.Press("z", t0); got != IntentNone {
		t.Errorf("unbound key should not produce intent, got %v", got)
	}
}

func TestHoldTracker_EdgeDoubleTapFiresTwice(t *testing.T) {
	h, t0 := newTestTracker()

	if got := h.Press("p", t0); got != IntentPause {
		t.Fatalf("first tap: got %v", got)
	}
	// Second tap well inside InitialHold but past the repeat window
	if got := h.Press("p", t0.Add(250*time.Millisecond)); got != IntentPause {
		t.Errorf("second tap should fire, got %v", got)
	}
	// Auto-repeat burst after that tap is still suppressed
	if got := h.Press("p", t0.Add(280*time.Millisecond)); got != IntentNone {
		t.Errorf("repeat inside window should not fire, got %v", got)
	}
}

func TestHoldTracker_OppositeReleases(t *testing.T) {
	h, t0 := newTestTracker()
	h.Press("left", t0)
	h.Press("d", t0.Add(10*time.Millisecond))

	c := h.Controls(t0.Add(20 * time.Millisecond))
	if c.Left || !c.Right {
		t.Errorf("expected right to replace left, got %+v", c)
	}

	h.Press("w", t0)
	h.Press("down", t0.Add(5*time.Millisecond))
	c = h.Controls(t0.Add(20 * time.Millisecond))
	if c.Forward || !c.Backward {
		t.Errorf("expected brake to replace throttle, got %+v", c)
	}
}

func TestHoldTracker_CombinedKeysAndReset(t *testing.T) {
	h, t0 := newTestTracker()
	h.Press("w", t0)
	h.Press("a", t0)

	c := h.Controls(t0.Add(10 * time.Millisecond))
	if !c.Forward || !c.Left {
		t.Errorf("expected forward+left, got %+v", c)
	}

	h.Release("W")
	if c := h.Controls(t0.Add(10 * time.Millisecond)); c.Forward || !c.Left {
		t.Errorf("expected only left after release, got %+v", c)
	}

	h.Reset()
	if c := h.Controls(t0.Add(10 * time.Millisecond)); c.Any() {
		t.Errorf("expected nothing held after reset, got %+v", c)
	}
}
