package tty

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/render"
)

// ColorMode selects how RGB colors reach the terminal
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorTrueColor
	Color256
)

func (m ColorMode) String() string {
	switch m {
	case ColorTrueColor:
		return "truecolor"
	case Color256:
		return "256"
	}
	return "auto"
}

// ParseColorMode resolves a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "24bit", "rgb":
		return ColorTrueColor, nil
	case "256":
		return Color256, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// Resolve turns ColorAuto into a concrete mode from the screen's color count
func (m ColorMode) Resolve(s tcell.Screen) ColorMode {
	if m != ColorAuto {
		return m
	}
	if s.Colors() >= 1<<24 {
		return ColorTrueColor
	}
	return Color256
}

// Color converts an RGB value for the mode
func (m ColorMode) Color(c render.RGB) tcell.Color {
	if m == Color256 {
		return tcell.PaletteColor(cubeIndex(c))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cubeIndex maps RGB to the xterm 6x6x6 color cube (indices 16-231)
func cubeIndex(c render.RGB) int {
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}
