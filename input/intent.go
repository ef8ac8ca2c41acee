package input

// Intent is a discrete edge-triggered request produced by a key press
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentReset
	IntentToggleCamera
	IntentToggleInertia
)

// IntentFor maps an edge action to its intent, IntentNone for held actions
func IntentFor(a Action) Intent {
	switch a {
	case ActionQuit:
		return IntentQuit
	case ActionPause:
		return IntentPause
	case ActionReset:
		return IntentReset
	case ActionToggleCamera:
		return IntentToggleCamera
	case ActionToggleInertia:
		return IntentToggleInertia
	}
	return IntentNone
}

func (i Intent) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentReset:
		return "reset"
	case IntentToggleCamera:
		return "toggle_camera"
	case IntentToggleInertia:
		return "toggle_inertia"
	}
	return "none"
}
