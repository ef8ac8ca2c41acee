package window

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/render"
)

// Config configures the window backend
type Config struct {
	Bindings   *input.Bindings
	Camera     render.CameraConfig
	Width      int
	Height     int
	Fullscreen bool
	TPS        int
	Title      string
	Antialias  bool
	ShowHint   bool
	// Time measures real frame time for the FPS readout, nil uses the monotonic clock
	Time   engine.TimeProvider
	Logger *zerolog.Logger
	// OnFrame observes each simulated snapshot, optional
	OnFrame func(engine.Snapshot)
}

// DefaultConfig returns the stock window settings
func DefaultConfig() Config {
	return Config{
		Bindings:   input.DefaultBindings(),
		Camera:     render.DefaultCameraConfig(),
		Width:      parameter.WindowWidth,
		Height:     parameter.WindowHeight,
		Fullscreen: parameter.WindowFullscreen,
		TPS:        parameter.TargetFPS,
		Title:      parameter.WindowTitle,
		Antialias:  true,
		ShowHint:   true,
	}
}

// edgeBinding pairs a resolved key with the intent it fires
type edgeBinding struct {
	combo  keyCombo
	intent input.Intent
}

// Game implements ebiten.Game over a session
// Ebiten owns the loop: Update steps the session at 1/TPS, Draw renders the last snapshot
type Game struct {
	session *engine.Session
	cfg     Config
	log     zerolog.Logger

	held  map[string]keyCombo
	edges []edgeBinding

	snap          engine.Snapshot
	width, height int

	time     engine.TimeProvider
	lastTick time.Time
}

// NewGame resolves bindings to window keys, names without a window key are skipped
func NewGame(s *engine.Session, cfg Config) *Game {
	if cfg.Bindings == nil {
		cfg.Bindings = input.DefaultBindings()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = parameter.TargetFPS
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "window").Logger()
	}
	tp := cfg.Time
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}

	g := &Game{
		session: s,
		cfg:     cfg,
		log:     logger,
		held:    make(map[string]keyCombo),
		snap:    s.Snapshot(),
		width:   cfg.Width,
		height:  cfg.Height,
		time:    tp,
	}

	for _, a := range []input.Action{input.ActionAccelerate, input.ActionBrake, input.ActionSteerLeft, input.ActionSteerRight} {
		for _, name := range cfg.Bindings.Keys(a) {
			if combo, ok := resolveKey(name); ok {
				g.held[name] = combo
			} else {
				g.log.Warn().Str("key", name).Str("action", a.String()).Msg("Key has no window equivalent")
			}
		}
	}
	for _, a := range input.EdgeActions {
		for _, name := range cfg.Bindings.Keys(a) {
			if combo, ok := resolveKey(name); ok {
				g.edges = append(g.edges, edgeBinding{combo: combo, intent: input.IntentFor(a)})
			}
		}
	}
	return g
}

// Update samples true key-down state and steps the session
func (g *Game) Update() error {
	controls := g.cfg.Bindings.ControlsFrom(func(key string) bool {
		combo, ok := g.held[key]
		return ok && combo.down()
	})

	var intents []input.Intent
	for _, e := range g.edges {
		if e.combo.ctrl && !ctrlDown() {
			continue
		}
		if inpututil.IsKeyJustPressed(e.combo.key) {
			intents = append(intents, e.intent)
		}
	}

	// Physics steps at the fixed tick, FPS follows the measured tick interval
	step := 1 / float64(ebiten.TPS())
	now := g.time.Now()
	elapsed := step
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	g.snap = g.session.FrameTimed(step, elapsed, controls, intents)
	if g.cfg.OnFrame != nil {
		g.cfg.OnFrame(g.snap)
	}
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Draw strokes the scene and overlays the HUD in debug-font cells
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(render.RGBBackground))

	scfg := render.DefaultSceneConfig(render.Viewport{Width: g.width, Height: g.height, CellAspect: 1})
	scfg.Camera = g.cfg.Camera
	for _, s := range render.BuildScene(g.snap, scfg).Segments {
		vector.StrokeLine(screen,
			float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y),
			1.5, rgba(s.Color), g.cfg.Antialias)
	}

	cw, lh := parameter.WindowCharWidth, parameter.WindowLineHeight
	hcfg := render.DefaultHUDConfig(g.width/cw, g.height/lh)
	hcfg.ShowHint = g.cfg.ShowHint
	// HUD reports the presented frame rate, which ebiten measures across draws
	hudSnap := g.snap
	hudSnap.FPS = ebiten.ActualFPS()
	hud := render.BuildHUD(hudSnap, hcfg)

	p := hud.Panel
	vector.DrawFilledRect(screen, float32(p.X*cw), float32(p.Y*lh), float32(p.W*cw), float32(p.H*lh),
		rgba(render.RGBHUDPanel), false)

	m := hud.Minimap
	vector.DrawFilledRect(screen, float32(m.X*cw), float32(m.Y*lh), float32(m.W*cw), float32(m.H*lh),
		rgba(render.RGBTrack), false)
	vector.DrawFilledCircle(screen, float32(m.DotX*cw+cw/2), float32(m.DotY*lh+lh/2), 4,
		rgba(render.RGBCarMarker), true)

	for _, l := range hud.Lines {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X*cw, l.Y*lh)
	}
}

// Layout tracks the window size, one logical pixel per device pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the session quits or the window closes
func Run(s *engine.Session, cfg Config) error {
	g := NewGame(s, cfg)

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.cfg.Fullscreen)
	ebiten.SetTPS(g.cfg.TPS)

	g.log.Info().
		Int("width", g.cfg.Width).
		Int("height", g.cfg.Height).
		Bool("fullscreen", g.cfg.Fullscreen).
		Int("tps", g.cfg.TPS).
		Msg("Window backend starting")

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if !s.Done() {
		s.Quit()
	}
	return nil
}
