package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/vi-racer/physics"
)

var (
	ErrDuplicateKey = errors.New("key bound to more than one action")
	ErrEmptyKey     = errors.New("empty key name")
)

// keyAliases normalizes the spellings accepted in config and reported by backends
var keyAliases = map[string]string{
	" ":          "space",
	"escape":     "esc",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	"return":     "enter",
}

// NormalizeKey canonicalizes a key name: lowercase, aliases resolved, "ctrl+x" spelled "ctrl-x"
func NormalizeKey(name string) string {
	if name == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(name))
	k = strings.ReplaceAll(k, "+", "-")
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

// DefaultKeyMap is the stock action -> keys layout
func DefaultKeyMap() map[string][]string {
	return map[string][]string{
		"accelerate":     {"w", "up"},
		"brake":          {"s", "down"},
		"steer_left":     {"a", "left"},
		"steer_right":    {"d", "right"},
		"quit":           {"q", "esc", "ctrl-c"},
		"pause":          {"p", "space"},
		"reset":          {"r"},
		"toggle_camera":  {"c"},
		"toggle_inertia": {"m"},
	}
}

// Bindings maps normalized key names to actions
type Bindings struct {
	keys map[string]Action
}

// DefaultBindings returns the stock layout
func DefaultBindings() *Bindings {
	b, err := ParseBindings(DefaultKeyMap())
	if err != nil {
		panic(fmt.Sprintf("default key map invalid: %v", err))
	}
	return b
}

// ParseBindings builds bindings from action name -> key names
// Returns error on unknown action names, empty keys, or keys bound twice
func ParseBindings(keyMap map[string][]string) (*Bindings, error) {
	b := &Bindings{keys: make(map[string]Action)}

	// Deterministic error reporting
	names := make([]string, 0, len(keyMap))
	for name := range keyMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ActionByName(name)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		for _, raw := range keyMap[name] {
			key := NormalizeKey(raw)
			if key == "" {
				return nil, fmt.Errorf("keymap [%s]: %w", name, ErrEmptyKey)
			}
			if prev, ok := b.keys[key]; ok && prev != action {
				return nil, fmt.Errorf("keymap [%s] key %q already bound to %s: %w", name, key, prev, ErrDuplicateKey)
			}
			b.keys[key] = action
		}
	}
	return b, nil
}

// Lookup returns the action bound to key, ActionNone if unbound
func (b *Bindings) Lookup(key string) Action {
	return b.keys[NormalizeKey(key)]
}

// Keys returns the sorted key names bound to a
func (b *Bindings) Keys(a Action) []string {
	var out []string
	for k, act := range b.keys {
		if act == a {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// ControlsFrom samples held actions through a backend key-state query
func (b *Bindings) ControlsFrom(isDown func(key string) bool) physics.Controls {
	var c physics.Controls
	for key, act := range b.keys {
		if !act.IsHeld() || !isDown(key) {
			continue
		}
		applyHeld(&c, act)
	}
	return c
}

func applyHeld(c *physics.Controls, a Action) {
	switch a {
	case ActionAccelerate:
		c.Forward = true
	case ActionBrake:
		c.Backward = true
	case ActionSteerLeft:
		c.Left = true
	case ActionSteerRight:
		c.Right = true
	}
}
