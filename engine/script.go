package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/physics"
)

var ErrInvalidScript = errors.New("invalid input script")

// ScriptStep holds one set of controls for a number of frames
type ScriptStep struct {
	Controls physics.Controls
	Frames   int
}

// Script replays a fixed per-frame control sequence
type Script struct {
	steps []ScriptStep
	index int
	used  int
}

// ParseScript parses "forward:144,left+forward:72,idle:10"
// Tokens: forward, backward (brake), left, right, idle; joined with '+'
func ParseScript(src string) (*Script, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidScript)
	}

	var steps []ScriptStep
	for i, part := range strings.Split(src, ",") {
		keys, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: step %d %q missing frame count", ErrInvalidScript, i+1, part)
		}
		frames, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("%w: step %d frame count %q", ErrInvalidScript, i+1, count)
		}

		var c physics.Controls
		for _, tok := range strings.Split(keys, "+") {
			switch strings.ToLower(strings.TrimSpace(tok)) {
			case "forward", "accelerate":
				c.Forward = true
			case "backward", "brake":
				c.Backward = true
			case "left":
				c.Left = true
			case "right":
				c.Right = true
			case "idle":
			default:
				return nil, fmt.Errorf("%w: step %d unknown control %q", ErrInvalidScript, i+1, tok)
			}
		}
		steps = append(steps, ScriptStep{Controls: c, Frames: frames})
	}
	return &Script{steps: steps}, nil
}

// Next returns the controls for the next frame, false once the script is exhausted
func (s *Script) Next() (physics.Controls, bool) {
	for s.index < len(s.steps) {
		st := s.steps[s.index]
		if s.used < st.Frames {
			s.used++
			return st.Controls, true
		}
		s.index++
		s.used = 0
	}
	return physics.Controls{}, false
}

// Frames returns the total frame count of the script
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.Frames
	}
	return n
}

// Steps returns a copy of the parsed steps
func (s *Script) Steps() []ScriptStep {
	return append([]ScriptStep(nil), s.steps...)
}

// ScriptDriver feeds a script into RunLoop and quits when it runs out
type ScriptDriver struct {
	Script *Script
	// OnFrame observes each presented snapshot, optional
	OnFrame func(Snapshot)
}

func (d *ScriptDriver) Poll() (physics.Controls, []input.Intent, error) {
	c, ok := d.Script.Next()
	if !ok {
		return physics.Controls{}, []input.Intent{input.IntentQuit}, nil
	}
	return c, nil, nil
}

func (d *ScriptDriver) Present(sn Snapshot) error {
	if d.OnFrame != nil {
		d.OnFrame(sn)
	}
	return nil
}
