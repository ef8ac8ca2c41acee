package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// CameraMode selects the view the renderers build
type CameraMode uint8

const (
	CameraChase CameraMode = iota
	CameraFirstPerson
)

func (m CameraMode) String() string {
	if m == CameraFirstPerson {
		return "first_person"
	}
	return "chase"
}

// Toggle cycles to the next camera mode
func (m CameraMode) Toggle() CameraMode {
	if m == CameraChase {
		return CameraFirstPerson
	}
	return CameraChase
}

// ParseCameraMode resolves a camera mode name
func ParseCameraMode(s string) (CameraMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chase":
		return CameraChase, nil
	case "first_person", "first-person", "fp":
		return CameraFirstPerson, nil
	}
	return 0, fmt.Errorf("unknown camera mode %q", s)
}

// SessionConfig is the startup state of a session
type SessionConfig struct {
	Params physics.Params
	Camera CameraMode
	Start  vmath.Vec3F

	// Time feeds the pausable game clock, nil uses the monotonic clock
	Time   TimeProvider
	Logger *zerolog.Logger
}

// Snapshot is an immutable copy of session state handed to presentation
type Snapshot struct {
	Car         physics.Car
	Params      physics.Params
	Camera      CameraMode
	Paused      bool
	Done        bool
	FrameNumber uint64
	FPS         float64
	GameTime    time.Duration
	Resets      int
	// Controls are the inputs applied this frame
	Controls physics.Controls
}

// Session owns the car and everything that mutates it
// Not safe for concurrent use, one goroutine drives Frame
type Session struct {
	cfg    SessionConfig
	params physics.Params
	car    physics.Car
	camera CameraMode
	clock  *PausableClock
	log    zerolog.Logger

	frame    uint64
	done     bool
	controls physics.Controls

	// FPS sampling
	fps        float64
	fpsFrames  int
	fpsElapsed float64

	resets int
}

// NewSession builds the car at the configured start position
func NewSession(cfg SessionConfig) *Session {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "session").Logger()
	}

	s := &Session{
		cfg:    cfg,
		params: cfg.Params,
		car:    physics.NewCar(cfg.Start),
		camera: cfg.Camera,
		clock:  NewPausableClock(cfg.Time),
		log:    logger,
	}
	s.log.Info().
		Str("inertia", s.params.Inertia.String()).
		Str("camera", s.camera.String()).
		Float64("max_speed", s.params.MaxSpeed).
		Msg("Session started")
	return s
}

// Frame applies intents, advances physics by dt seconds unless paused and returns the new state
// dt above MaxFrameDelta is clamped, the raw value still feeds the FPS counter
func (s *Session) Frame(dt float64, in physics.Controls, intents []input.Intent) Snapshot {
	return s.FrameTimed(dt, dt, in, intents)
}

// FrameTimed is Frame for backends that step physics at a fixed rate
// dt advances the car, realDt is the measured wall time since the previous frame and feeds FPS
func (s *Session) FrameTimed(dt, realDt float64, in physics.Controls, intents []input.Intent) Snapshot {
	for _, it := range intents {
		s.apply(it)
	}

	s.sampleFPS(realDt)
	s.frame++

	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	if s.done || s.clock.IsPaused() {
		// Frozen car, no pedal acts on it
		s.controls = physics.Controls{}
		s.car.Acceleration = vmath.Vec3F{}
	} else {
		s.controls = in
		physics.Update(&s.car, &s.params, dt, in)
	}

	return s.Snapshot()
}

// Snapshot returns the current state without advancing
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Car:         s.car,
		Params:      s.params,
		Camera:      s.camera,
		Paused:      s.clock.IsPaused(),
		Done:        s.done,
		FrameNumber: s.frame,
		FPS:         s.fps,
		GameTime:    s.clock.Elapsed(),
		Resets:      s.resets,
		Controls:    s.controls,
	}
}

// Done reports whether a quit was requested
func (s *Session) Done() bool {
	return s.done
}

// Quit ends the session
func (s *Session) Quit() {
	if s.done {
		return
	}
	s.done = true
	s.log.Info().
		Uint64("frames", s.frame).
		Int("resets", s.resets).
		Dur("game_time", s.clock.Elapsed()).
		Float64("x", s.car.Position.X).
		Float64("z", s.car.Position.Z).
		Msg("Session finished")
}

// Reset rebuilds the car at the start position, tuning and camera are kept
func (s *Session) Reset() {
	s.car = physics.NewCar(s.cfg.Start)
	s.resets++
	s.log.Debug().Int("resets", s.resets).Msg("Car reset")
}

func (s *Session) apply(it input.Intent) {
	switch it {
	case input.IntentQuit:
		s.Quit()
	case input.IntentPause:
		paused := s.clock.Toggle()
		s.log.Debug().Bool("paused", paused).Msg("Pause toggled")
	case input.IntentReset:
		s.Reset()
	case input.IntentToggleCamera:
		s.camera = s.camera.Toggle()
		s.log.Debug().Str("camera", s.camera.String()).Msg("Camera switched")
	case input.IntentToggleInertia:
		s.params.Inertia = s.params.Inertia.Toggle()
		s.log.Info().Str("inertia", s.params.Inertia.String()).Msg("Inertia policy switched")
	}
}

// sampleFPS averages frame rate over FPSSampleWindow of raw frame time
func (s *Session) sampleFPS(dt float64) {
	if !(dt > 0) {
		return
	}
	s.fpsFrames++
	s.fpsElapsed += dt
	if s.fpsElapsed >= parameter.FPSSampleWindow.Seconds() {
		s.fps = float64(s.fpsFrames) / s.fpsElapsed
		s.fpsFrames = 0
		s.fpsElapsed = 0
	}
}

// ThrottleFraction returns speed as a fraction of MaxSpeed, for audio and gauges
func (sn Snapshot) ThrottleFraction() float64 {
	if sn.Params.MaxSpeed <= 0 {
		return 0
	}
	return vmath.ClampF(sn.Car.Speed/sn.Params.MaxSpeed, 0, 1)
}
