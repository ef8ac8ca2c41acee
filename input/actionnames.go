package input

import "fmt"

// Action is a bindable game action
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, sampled every frame
	ActionAccelerate
	ActionBrake
	ActionSteerLeft
	ActionSteerRight

	// Edge actions, fired once per press
	ActionQuit
	ActionPause
	ActionReset
	ActionToggleCamera
	ActionToggleInertia
)

// actionRegistry maps canonical action names used in config to actions
var actionRegistry = map[string]Action{
	"accelerate":     ActionAccelerate,
	"brake":          ActionBrake,
	"steer_left":     ActionSteerLeft,
	"steer_right":    ActionSteerRight,
	"quit":           ActionQuit,
	"pause":          ActionPause,
	"reset":          ActionReset,
	"toggle_camera":  ActionToggleCamera,
	"toggle_inertia": ActionToggleInertia,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}

// IsHeld reports whether the action is sampled as held state rather than fired on press
func (a Action) IsHeld() bool {
	return a >= ActionAccelerate && a <= ActionSteerRight
}

// EdgeActions lists the actions that fire intents, in dispatch order
var EdgeActions = []Action{ActionQuit, ActionPause, ActionReset, ActionToggleCamera, ActionToggleInertia}
