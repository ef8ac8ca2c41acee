package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vi-racer/physics"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("forward:3, left+forward:2,idle:1")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Frames() != 6 {
		t.Errorf("Frames = %d, want 6", s.Frames())
	}

	want := []physics.Controls{
		{Forward: true}, {Forward: true}, {Forward: true},
		{Forward: true, Left: true}, {Forward: true, Left: true},
		{},
	}
	for i, w := range want {
		got, ok := s.Next()
		if !ok || got != w {
			t.Errorf("frame %d: got %+v ok=%v, want %+v", i, got, ok, w)
		}
	}
	if _, ok := s.Next(); ok {
		t.Error("expected script exhausted")
	}
}

func TestParseScript_Invalid(t *testing.T) {
	for _, src := range []string{"", "forward", "forward:0", "forward:-2", "jump:3", "forward:x", "left+fly:1"} {
		if _, err := ParseScript(src); !errors.Is(err, ErrInvalidScript) {
			t.Errorf("ParseScript(%q) err = %v, want ErrInvalidScript", src, err)
		}
	}
}

func TestRunLoop_ScriptedDrive(t *testing.T) {
	script, err := ParseScript("forward:144")
	if err != nil {
		t.Fatal(err)
	}
	p := physics.DefaultParams()
	p.Inertia = physics.InertiaMomentum
	s := NewSession(SessionConfig{Params: p, Time: NewFrameClock(time.Unix(0, 0), 0)})

	var last Snapshot
	presented := 0
	d := &ScriptDriver{Script: script, OnFrame: func(sn Snapshot) {
		presented++
		last = sn
		if sn.Car.Speed > p.MaxSpeed {
			t.Errorf("frame %d: speed %v above max", sn.FrameNumber, sn.Car.Speed)
		}
	}}

	err = RunLoop(context.Background(), LoopConfig{Session: s, FixedDelta: 1.0 / 144}, d)
	if err != nil {
		t.Fatalf("RunLoop: %v", err)
	}

	// 144 scripted frames plus the quit frame
	if presented != 145 || !last.Done {
		t.Errorf("presented %d frames, done=%v", presented, last.Done)
	}
	if math.Abs(last.Car.Speed-50) > 1e-6 {
		t.Errorf("final speed = %v, want 50", last.Car.Speed)
	}
}

func TestRunLoop_MaxFrames(t *testing.T) {
	script, _ := ParseScript("idle:1000")
	s := NewSession(SessionConfig{Params: physics.DefaultParams()})

	n := 0
	d := &ScriptDriver{Script: script, OnFrame: func(Snapshot) { n++ }}
	if err := RunLoop(context.Background(), LoopConfig{Session: s, MaxFrames: 10, FixedDelta: 0.01}, d); err != nil {
		t.Fatalf("RunLoop: %v", err)
	}
	if n != 10 {
		t.Errorf("presented %d frames, want 10", n)
	}
}

func TestRunLoop_ContextCancel(t *testing.T) {
	script, _ := ParseScript("idle:100000")
	s := NewSession(SessionConfig{Params: physics.DefaultParams()})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := RunLoop(ctx, LoopConfig{Session: s, FPS: 100}, &ScriptDriver{Script: script})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RunLoop err = %v, want deadline exceeded", err)
	}
}

type failingDriver struct{ ScriptDriver }

var errPresent = errors.New("screen gone")

func (failingDriver) Present(Snapshot) error { return errPresent }

func TestRunLoop_DriverError(t *testing.T) {
	script, _ := ParseScript("idle:5")
	s := NewSession(SessionConfig{Params: physics.DefaultParams()})

	d := &failingDriver{ScriptDriver{Script: script}}
	if err := RunLoop(context.Background(), LoopConfig{Session: s}, d); !errors.Is(err, errPresent) {
		t.Errorf("RunLoop err = %v, want errPresent", err)
	}
}

func TestRunLoop_FixedDeltaKeepsMeasuredFPS(t *testing.T) {
	script, _ := ParseScript("forward:144")
	p := physics.DefaultParams()
	p.Inertia = physics.InertiaMomentum
	s := NewSession(SessionConfig{Params: p})

	// Physics steps at 144 Hz while the clock reports 20ms wall frames
	clock := NewFrameClock(time.Unix(0, 0), 20*time.Millisecond)
	var last Snapshot
	d := &ScriptDriver{Script: script, OnFrame: func(sn Snapshot) { last = sn }}

	err := RunLoop(context.Background(), LoopConfig{Session: s, MaxFrames: 144, FixedDelta: 1.0 / 144, Time: clock}, d)
	if err != nil {
		t.Fatalf("RunLoop: %v", err)
	}
	if math.Abs(last.Car.Speed-50) > 1e-6 {
		t.Errorf("speed = %v, want 50 from the fixed step", last.Car.Speed)
	}
	if math.Abs(last.FPS-50) > 0.5 {
		t.Errorf("FPS = %v, want ~50 from the measured 20ms frames", last.FPS)
	}
}
