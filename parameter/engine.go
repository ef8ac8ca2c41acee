package parameter

import "time"

// Frame loop timing
const (
	// TargetFPS is the frame rate the loop and the window backend aim for
	TargetFPS = 144

	// MaxFrameDelta caps a single physics step in seconds, so a stalled frame cannot teleport the car
	MaxFrameDelta = 0.1

	// FPSSampleWindow is the span over which the HUD frame counter is averaged
	FPSSampleWindow = 500 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Terminal key hold emulation
// Terminals report presses and auto-repeats only, never releases
const (
	// KeyInitialHold covers the OS delay between the first press and the first auto-repeat
	KeyInitialHold = 550 * time.Millisecond

	// KeyRepeatHold covers the gap between auto-repeat events
	KeyRepeatHold = 90 * time.Millisecond
)
