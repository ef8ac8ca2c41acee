package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/render"
)

// cell is one canvas character
type cell struct {
	ch rune
	fg render.RGB
	bg render.RGB
}

// Canvas is an off-screen cell buffer flushed to a tcell screen once per frame
type Canvas struct {
	width, height int
	cells         []cell
	background    render.RGB
}

// NewCanvas creates a canvas cleared to bg
func NewCanvas(width, height int, bg render.RGB) *Canvas {
	c := &Canvas{background: bg}
	c.Resize(width, height)
	return c
}

// Resize reallocates the buffer, contents are cleared
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]cell, c.width*c.height)
	c.Clear()
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear resets every cell to a blank on the background color
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: c.background, bg: c.background}
	}
}

// Set writes a character keeping the cell background, out of bounds is ignored
func (c *Canvas) Set(x, y int, ch rune, fg render.RGB) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	c.cells[i].ch = ch
	c.cells[i].fg = fg
}

// Get returns the character and foreground at x, y
func (c *Canvas) Get(x, y int) (rune, render.RGB) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, render.RGB{}
	}
	cl := c.cells[y*c.width+x]
	return cl.ch, cl.fg
}

// FillRect paints a background rectangle and blanks it
func (c *Canvas) FillRect(r render.Rect, bg render.RGB) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, c.height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, c.width); x++ {
			c.cells[y*c.width+x] = cell{ch: ' ', fg: bg, bg: bg}
		}
	}
}

// Text writes s starting at x, y without wrapping
func (c *Canvas) Text(x, y int, s string, fg render.RGB) {
	for _, r := range s {
		c.Set(x, y, r, fg)
		x++
	}
}

// lineGlyph picks a character for the on-screen slope of a segment
// Cells are twice as tall as wide, so dy counts double
func lineGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '*'
	}
	angle := math.Abs(math.Atan2(2*dy, dx)) * 180 / math.Pi
	switch {
	case angle < 22.5 || angle > 157.5:
		return '-'
	case angle > 67.5 && angle < 112.5:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// Line rasterizes a segment with Bresenham's algorithm after clipping it to the canvas
func (c *Canvas) Line(a, b render.Point2, fg render.RGB) {
	if !finite(a) || !finite(b) {
		return
	}
	ch := lineGlyph(b.X-a.X, b.Y-a.Y)

	a, b, ok := clipToRect(a, b, -0.5, -0.5, float64(c.width)-0.5, float64(c.height)-0.5)
	if !ok {
		return
	}

	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.Set(x0, y0, ch, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipToRect clips a-b to the rectangle with Liang-Barsky, false when nothing remains
func clipToRect(a, b render.Point2, minX, minY, maxX, maxY float64) (render.Point2, render.Point2, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return render.Point2{X: a.X + t0*dx, Y: a.Y + t0*dy},
		render.Point2{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

// Flush copies the canvas onto the screen, the caller calls Show
func (c *Canvas) Flush(s tcell.Screen, mode ColorMode) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			style := tcell.StyleDefault.
				Foreground(mode.Color(cl.fg)).
				Background(mode.Color(cl.bg))
			s.SetContent(x, y, cl.ch, nil, style)
		}
	}
}

func finite(p render.Point2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
