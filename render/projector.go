package render

import (
	"math"

	"github.com/lixenwraith/vi-racer/vmath"
)

// Viewport is the screen rectangle the scene is projected into
type Viewport struct {
	X, Y          int
	Width, Height int
	// CellAspect is cell height over cell width: 2 for terminal cells, 1 for pixels
	CellAspect float64
}

// Point2 is a projected screen position
type Point2 struct {
	X, Y float64
}

// Projector maps world points to viewport coordinates through a camera
type Projector struct {
	eye              vmath.Vec3F
	right, up, fwd   vmath.Vec3F
	near             float64
	focal            float64
	centerX, centerY float64
	aspect           float64
}

// NewProjector builds a projector, near is the clipping distance along the view axis
func NewProjector(cam Camera, vp Viewport, near float64) Projector {
	right, up, fwd := cam.basis()

	aspect := vp.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	fov := vmath.ClampF(cam.FovY, 1, 179)

	return Projector{
		eye:     cam.Eye,
		right:   right,
		up:      up,
		fwd:     fwd,
		near:    near,
		focal:   (float64(vp.Height) / 2) / math.Tan(vmath.DegToRad(fov)/2),
		centerX: float64(vp.X) + float64(vp.Width)/2,
		centerY: float64(vp.Y) + float64(vp.Height)/2,
		aspect:  aspect,
	}
}

// ToView converts a world point to view space: X right, Y up, Z depth
func (p Projector) ToView(w vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(w, p.eye)
	return vmath.Vec3F{
		X: vmath.V3FDot(d, p.right),
		Y: vmath.V3FDot(d, p.up),
		Z: vmath.V3FDot(d, p.fwd),
	}
}

// screen projects a view-space point known to be in front of the near plane
// Horizontal distance is stretched by the cell aspect so terminal cells render square
func (p Projector) screen(v vmath.Vec3F) Point2 {
	inv := p.focal / v.Z
	return Point2{
		X: p.centerX + v.X*inv*p.aspect,
		Y: p.centerY - v.Y*inv,
	}
}

// Project maps a world point to the screen, false when it is behind the near plane
func (p Projector) Project(w vmath.Vec3F) (Point2, float64, bool) {
	v := p.ToView(w)
	if v.Z < p.near {
		return Point2{}, 0, false
	}
	return p.screen(v), v.Z, true
}

// ProjectSegment clips a world segment against the near plane and projects it
// Returns the screen endpoints and the mean depth, false when fully clipped
func (p Projector) ProjectSegment(a, b vmath.Vec3F) (Point2, Point2, float64, bool) {
	va, vb := p.ToView(a), p.ToView(b)

	aIn, bIn := va.Z >= p.near, vb.Z >= p.near
	switch {
	case !aIn && !bIn:
		return Point2{}, Point2{}, 0, false
	case !aIn:
		va = clipNear(vb, va, p.near)
	case !bIn:
		vb = clipNear(va, vb, p.near)
	}

	return p.screen(va), p.screen(vb), (va.Z + vb.Z) / 2, true
}

// clipNear returns the point on in->out where depth equals near
func clipNear(in, out vmath.Vec3F, near float64) vmath.Vec3F {
	t := (in.Z - near) / (in.Z - out.Z)
	return vmath.Vec3F{
		X: vmath.Lerp(in.X, out.X, t),
		Y: vmath.Lerp(in.Y, out.Y, t),
		Z: near,
	}
}
