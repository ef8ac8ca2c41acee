package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/render/tty"
	"github.com/lixenwraith/vi-racer/render/window"
)

var (
	configFlag  = flag.String("config", "", "Config file path (default: ./vi-racer.toml or user config dir)")
	displayFlag = flag.String("display", "", "Display backend: terminal, window, headless")
	cameraFlag  = flag.String("camera", "", "Camera mode: chase, first_person")
	inertiaFlag = flag.String("inertia", "", "Inertia policy: arcade, momentum")
	scriptFlag  = flag.String("script", "", "Scripted input, e.g. forward:144,left+forward:72")
	framesFlag  = flag.Uint64("frames", 0, "Stop after this many frames, 0 runs until quit")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the log directory")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	colorFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var script *engine.Script
	if *scriptFlag != "" {
		if script, err = engine.ParseScript(*scriptFlag); err != nil {
			return err
		}
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().
		Str("config", cfg.Source).
		Str("backend", cfg.Display.Backend).
		Int("fps", cfg.Display.FPS).
		Msg("Starting vi-racer")

	sc := cfg.SessionConfig()
	sc.Logger = &logger
	session := engine.NewSession(sc)
	defer session.Quit()

	obs := newObserver(startAudio(cfg, &logger))
	defer obs.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Display.Backend {
	case config.BackendHeadless:
		return runHeadless(ctx, cfg, session, script, obs)
	case config.BackendWindow:
		return runWindow(cfg, session, obs, &logger)
	default:
		return runTerminal(ctx, cfg, session, obs, &logger)
	}
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["display"] {
		cfg.Display.Backend = *displayFlag
	} else if *scriptFlag != "" {
		cfg.Display.Backend = config.BackendHeadless
	}
	if set["camera"] {
		cfg.Camera.Mode = *cameraFlag
	}
	if set["inertia"] {
		cfg.Car.Inertia = *inertiaFlag
	}
	if set["color"] {
		cfg.Display.Color = *colorFlag
	}
	if set["debug"] {
		cfg.Log.Debug = *debugFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

// startAudio returns an initialized sound manager or nil, audio failure is never fatal
func startAudio(cfg *config.Config, logger *zerolog.Logger) *audio.SoundManager {
	if !cfg.Audio.Enabled || cfg.Display.Backend == config.BackendHeadless {
		return nil
	}
	sound := audio.NewSoundManager(cfg.AudioSettings(), logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
		return nil
	}
	return sound
}

// observer feeds presented snapshots to the audio engine
type observer struct {
	sound  *audio.SoundManager
	resets int
}

func newObserver(sound *audio.SoundManager) *observer {
	return &observer{sound: sound}
}

func (o *observer) observe(sn engine.Snapshot) {
	if o.sound == nil {
		return
	}
	o.sound.UpdateEngine(sn.ThrottleFraction(), sn.Controls.Forward, sn.Paused || sn.Done)
	if sn.Resets > o.resets {
		o.resets = sn.Resets
		o.sound.PlayChime()
	}
}

func (o *observer) close() {
	if o.sound != nil {
		o.sound.Cleanup()
	}
}

// observedDriver reports every presented snapshot to the observer before drawing it
type observedDriver struct {
	engine.Driver
	obs *observer
}

func (d observedDriver) Present(sn engine.Snapshot) error {
	d.obs.observe(sn)
	return d.Driver.Present(sn)
}

func runTerminal(ctx context.Context, cfg *config.Config, session *engine.Session, obs *observer, logger *zerolog.Logger) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	mode, err := tty.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}

	tc := tty.DefaultConfig()
	tc.Bindings = bindings
	tc.ColorMode = mode
	tc.Camera = cfg.CameraConfig()
	tc.InitialHold = cfg.Input.InitialHold
	tc.RepeatHold = cfg.Input.RepeatHold
	tc.ShowHint = cfg.Display.ShowHint
	tc.Logger = logger

	backend, err := tty.New(nil, tc)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer backend.Close()

	// Restore the terminal before the stack trace so it stays readable
	defer func() {
		if r := recover(); r != nil {
			backend.Close()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-RACER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	err = engine.RunLoop(ctx, engine.LoopConfig{
		Session:   session,
		FPS:       cfg.Display.FPS,
		MaxFrames: *framesFlag,
	}, observedDriver{Driver: backend, obs: obs})
	if errors.Is(err, context.Canceled) || errors.Is(err, tty.ErrScreenClosed) {
		return nil
	}
	return err
}

func runHeadless(ctx context.Context, cfg *config.Config, session *engine.Session, script *engine.Script, obs *observer) error {
	if script == nil {
		return errors.New("headless display needs -script")
	}
	driver := &engine.ScriptDriver{Script: script, OnFrame: obs.observe}

	// Unpaced replay on a stepped clock, frame timing reads as the configured rate
	err := engine.RunLoop(ctx, engine.LoopConfig{
		Session:    session,
		MaxFrames:  *framesFlag,
		FixedDelta: 1 / float64(cfg.Display.FPS),
		Time:       engine.NewFrameClockFPS(time.Now(), cfg.Display.FPS),
	}, driver)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	sn := session.Snapshot()
	fmt.Printf("frames=%d fps=%.0f speed=%.2f heading=%.1f position=(%.2f, %.2f, %.2f) inertia=%s\n",
		sn.FrameNumber, sn.FPS, sn.Car.Speed, sn.Car.Heading,
		sn.Car.Position.X, sn.Car.Position.Y, sn.Car.Position.Z,
		sn.Params.Inertia)
	return nil
}

func runWindow(cfg *config.Config, session *engine.Session, obs *observer, logger *zerolog.Logger) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	wc := window.DefaultConfig()
	wc.Bindings = bindings
	wc.Camera = cfg.CameraConfig()
	wc.Width = cfg.Window.Width
	wc.Height = cfg.Window.Height
	wc.Fullscreen = cfg.Window.Fullscreen
	wc.Antialias = cfg.Window.Antialias
	wc.Title = cfg.Window.Title
	wc.TPS = cfg.Display.FPS
	wc.ShowHint = cfg.Display.ShowHint
	wc.Logger = logger
	wc.OnFrame = obs.observe

	if err := window.Run(session, wc); err != nil {
		return fmt.Errorf("window backend: %w", err)
	}
	return nil
}
