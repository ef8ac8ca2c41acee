package tty

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/render"
)

// ErrScreenClosed is returned by Poll once the event source is gone
var ErrScreenClosed = errors.New("terminal screen closed")

// Config configures the terminal backend
type Config struct {
	Bindings    *input.Bindings
	ColorMode   ColorMode
	Camera      render.CameraConfig
	InitialHold time.Duration
	RepeatHold  time.Duration
	ShowHint    bool
	// Time stamps key presses for hold emulation, nil uses the monotonic clock
	Time   engine.TimeProvider
	Logger *zerolog.Logger
}

// DefaultConfig returns the stock terminal backend settings
func DefaultConfig() Config {
	return Config{
		Bindings:    input.DefaultBindings(),
		ColorMode:   ColorAuto,
		Camera:      render.DefaultCameraConfig(),
		InitialHold: parameter.KeyInitialHold,
		RepeatHold:  parameter.KeyRepeatHold,
		ShowHint:    true,
	}
}

// Backend renders snapshots into a tcell screen and turns key events into controls
// Implements engine.Driver
type Backend struct {
	screen tcell.Screen
	cfg    Config
	mode   ColorMode
	canvas *Canvas
	hold   *input.HoldTracker
	time   engine.TimeProvider
	log    zerolog.Logger

	events chan tcell.Event
	closed bool
}

// New initializes the screen and starts the event poller
// Pass a simulation screen in tests, nil opens the real terminal
func New(screen tcell.Screen, cfg Config) (*Backend, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	if cfg.Bindings == nil {
		cfg.Bindings = input.DefaultBindings()
	}
	tp := cfg.Time
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "tty").Logger()
	}

	w, h := screen.Size()
	b := &Backend{
		screen: screen,
		cfg:    cfg,
		mode:   cfg.ColorMode.Resolve(screen),
		canvas: NewCanvas(w, h, render.RGBBackground),
		hold:   input.NewHoldTracker(cfg.Bindings, cfg.InitialHold, cfg.RepeatHold),
		time:   tp,
		log:    logger,
		events: make(chan tcell.Event, parameter.EventQueueSize),
	}
	b.log.Info().Int("cols", w).Int("rows", h).Str("color", b.mode.String()).Msg("Terminal backend ready")

	go b.pollEvents()
	return b, nil
}

// pollEvents forwards screen events until the screen is finalized
// A full queue drops events, the loop drains it every frame
func (b *Backend) pollEvents() {
	defer close(b.events)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		default:
		}
	}
}

// Poll drains pending events and returns the held controls and edge intents
func (b *Backend) Poll() (physics.Controls, []input.Intent, error) {
	var intents []input.Intent

drain:
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return physics.Controls{}, nil, ErrScreenClosed
			}
			if it := b.handle(ev); it != input.IntentNone {
				intents = append(intents, it)
			}
		default:
			break drain
		}
	}

	return b.hold.Controls(b.time.Now()), intents, nil
}

func (b *Backend) handle(ev tcell.Event) input.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		if name == "" {
			return input.IntentNone
		}
		return b.hold.Press(name, b.time.Now())
	case *tcell.EventResize:
		w, h := ev.Size()
		b.canvas.Resize(w, h)
		b.screen.Sync()
		b.log.Debug().Int("cols", w).Int("rows", h).Msg("Terminal resized")
	}
	return input.IntentNone
}

// Present draws the scene and HUD for the snapshot
func (b *Backend) Present(sn engine.Snapshot) error {
	w, h := b.canvas.Size()
	b.canvas.Clear()

	scfg := render.DefaultSceneConfig(render.Viewport{Width: w, Height: h, CellAspect: 2})
	scfg.Camera = b.cfg.Camera
	for _, seg := range render.BuildScene(sn, scfg).Segments {
		b.canvas.Line(seg.A, seg.B, seg.Color)
	}

	hcfg := render.DefaultHUDConfig(w, h)
	hcfg.ShowHint = b.cfg.ShowHint
	hud := render.BuildHUD(sn, hcfg)
	b.drawHUD(hud)

	b.canvas.Flush(b.screen, b.mode)
	b.screen.Show()
	return nil
}

func (b *Backend) drawHUD(h render.HUD) {
	b.canvas.FillRect(h.Panel, render.RGBHUDPanel)

	m := h.Minimap
	b.canvas.FillRect(m.Rect, render.RGBTrack)
	b.canvas.Set(m.DotX, m.DotY, '●', render.RGBCarMarker)

	for _, l := range h.Lines {
		b.canvas.Text(l.X, l.Y, l.Text, l.Color)
	}
}

// Close restores the terminal, safe to call more than once
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.screen.Fini()
}
