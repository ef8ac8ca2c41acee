package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// TextLine is one HUD string at a cell position
type TextLine struct {
	X, Y  int
	Text  string
	Color RGB
}

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Minimap is the top-down track map with the car dot
type Minimap struct {
	Rect
	DotX, DotY int
}

// HUD is the overlay for one frame, all coordinates in character cells
type HUD struct {
	Panel   Rect
	Lines   []TextLine
	Minimap Minimap
}

// HUDConfig sizes the overlay to the screen in cells
type HUDConfig struct {
	Cols, Rows int
	ShowHint   bool
	Hint       string
}

// DefaultHUDConfig returns a config for a screen of cols x rows cells
func DefaultHUDConfig(cols, rows int) HUDConfig {
	return HUDConfig{
		Cols:     cols,
		Rows:     rows,
		ShowHint: true,
		Hint:     parameter.HUDControlHint,
	}
}

// BuildHUD lays out the panel text, minimap and hint for the snapshot
func BuildHUD(sn engine.Snapshot, cfg HUDConfig) HUD {
	car := sn.Car

	text := []string{
		parameter.HUDTitle,
		fmt.Sprintf("FPS: %.0f", sn.FPS),
		fmt.Sprintf("Speed: %.2f", car.Speed),
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", car.Position.X, car.Position.Y, car.Position.Z),
		fmt.Sprintf("Acceleration: %.2f", car.LongitudinalAccel()),
		fmt.Sprintf("Heading: %.1f deg", car.Heading),
		fmt.Sprintf("Mode: [%s] %s", strings.ToUpper(sn.Params.Inertia.String()[:1]), sn.Params.Inertia),
		fmt.Sprintf("Camera: %s", sn.Camera),
	}

	panelW := min(parameter.HUDPanelWidth, cfg.Cols)
	panelH := len(text) + parameter.HUDMinimapHeight + 4
	h := HUD{Panel: Rect{X: 0, Y: 0, W: panelW, H: min(panelH, cfg.Rows)}}

	for i, s := range text {
		col := RGBHUDText
		if i == 0 {
			col = RGBHUDTitle
		}
		h.Lines = append(h.Lines, TextLine{X: 1, Y: 1 + i, Text: clip(s, panelW-2), Color: col})
	}

	if sn.Paused {
		h.Lines = append(h.Lines, TextLine{X: 1, Y: 1 + len(text), Text: "PAUSED", Color: RGBHUDAlert})
	}

	h.Minimap = buildMinimap(car.Position, Rect{
		X: 1,
		Y: len(text) + 3,
		W: min(parameter.HUDMinimapWidth, max(panelW-2, 0)),
		H: parameter.HUDMinimapHeight,
	})

	if cfg.ShowHint && cfg.Rows > 0 {
		h.Lines = append(h.Lines, TextLine{X: 0, Y: cfg.Rows - 1, Text: clip(cfg.Hint, cfg.Cols), Color: RGBHUDDim})
	}
	return h
}

// buildMinimap maps the track plane extent onto r, +Z up
func buildMinimap(pos vmath.Vec3F, r Rect) Minimap {
	half := parameter.TrackPlaneSize * parameter.TrackPlaneScale / 2
	m := Minimap{Rect: r}
	if r.W <= 0 || r.H <= 0 {
		return m
	}

	u := vmath.ClampF((pos.X+half)/(2*half), 0, 1)
	v := vmath.ClampF((pos.Z+half)/(2*half), 0, 1)
	m.DotX = r.X + int(u*float64(r.W-1)+0.5)
	m.DotY = r.Y + int((1-v)*float64(r.H-1)+0.5)
	return m
}

// clip truncates s to n runes
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
