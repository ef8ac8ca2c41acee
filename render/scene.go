package render

import (
	"sort"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Segment is a projected, colored 2D line
type Segment struct {
	A, B  Point2
	Depth float64
	Color RGB
}

// Scene is the display list for one frame, sorted far to near
type Scene struct {
	Segments []Segment
	Camera   Camera
}

// SceneConfig controls scene construction
type SceneConfig struct {
	Camera   CameraConfig
	Viewport Viewport
	Near     float64
	// Background is the color distant lines fade toward
	Background RGB
	Fog        bool
}

// DefaultSceneConfig returns a config for the given viewport
func DefaultSceneConfig(vp Viewport) SceneConfig {
	return SceneConfig{
		Camera:     DefaultCameraConfig(),
		Viewport:   vp,
		Near:       parameter.CameraNearPlane,
		Background: RGBBackground,
		Fog:        true,
	}
}

// sceneBuilder accumulates segments through one projector
type sceneBuilder struct {
	proj Projector
	cfg  SceneConfig
	segs []Segment
}

func (b *sceneBuilder) line(a, c vmath.Vec3F, col RGB) {
	p0, p1, depth, ok := b.proj.ProjectSegment(a, c)
	if !ok {
		return
	}
	if b.cfg.Fog {
		col = Fog(col, b.cfg.Background, depth, parameter.FogStart, parameter.FogEnd)
	}
	b.segs = append(b.segs, Segment{A: p0, B: p1, Depth: depth, Color: col})
}

// BuildScene projects the track plane, grid and car for the snapshot
func BuildScene(sn engine.Snapshot, cfg SceneConfig) Scene {
	cam := CameraFor(sn, cfg.Camera)
	b := &sceneBuilder{
		proj: NewProjector(cam, cfg.Viewport, cfg.Near),
		cfg:  cfg,
	}

	b.trackPlane()
	b.grid()
	b.car(sn)

	// Painter's order: near segments overwrite far ones
	sort.SliceStable(b.segs, func(i, j int) bool {
		return b.segs[i].Depth > b.segs[j].Depth
	})
	return Scene{Segments: b.segs, Camera: cam}
}

// trackPlane outlines the scaled plane and paints stripes across it every TrackStripeSpacing
func (b *sceneBuilder) trackPlane() {
	half := parameter.TrackPlaneSize * parameter.TrackPlaneScale / 2
	y := parameter.TrackPlaneY

	corners := [4]vmath.Vec3F{
		{X: -half, Y: y, Z: -half},
		{X: half, Y: y, Z: -half},
		{X: half, Y: y, Z: half},
		{X: -half, Y: y, Z: half},
	}
	for i := range corners {
		b.line(corners[i], corners[(i+1)%4], RGBTrack)
	}

	for z := -half + parameter.TrackStripeSpacing; z < half; z += parameter.TrackStripeSpacing {
		b.line(vmath.Vec3F{X: -half, Y: y, Z: z}, vmath.Vec3F{X: half, Y: y, Z: z}, RGBStripe)
	}
	for x := -half + parameter.TrackStripeSpacing; x < half; x += parameter.TrackStripeSpacing {
		b.line(vmath.Vec3F{X: x, Y: y, Z: -half}, vmath.Vec3F{X: x, Y: y, Z: half}, RGBTrack)
	}
}

// grid draws GridSlices lines per axis centered on the origin at ground level
func (b *sceneBuilder) grid() {
	half := float64(parameter.GridSlices/2) * parameter.GridSpacing
	for i := 0; i <= parameter.GridSlices; i++ {
		o := -half + float64(i)*parameter.GridSpacing
		b.line(vmath.Vec3F{X: o, Z: -half}, vmath.Vec3F{X: o, Z: half}, RGBGrid)
		b.line(vmath.Vec3F{X: -half, Z: o}, vmath.Vec3F{X: half, Z: o}, RGBGrid)
	}
}

// carBoxEdges indexes the 12 edges of a box with corners numbered bottom 0-3, top 4-7
var carBoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CarCorners returns the world corners of the car body box rotated by heading
func CarCorners(pos vmath.Vec3F, heading float64) [8]vmath.Vec3F {
	hw := parameter.CarBodyWidth / 2
	hh := parameter.CarBodyHeight / 2
	hl := parameter.CarBodyLength / 2

	local := [8]vmath.Vec3F{
		{X: -hw, Y: -hh, Z: -hl}, {X: hw, Y: -hh, Z: -hl}, {X: hw, Y: -hh, Z: hl}, {X: -hw, Y: -hh, Z: hl},
		{X: -hw, Y: hh, Z: -hl}, {X: hw, Y: hh, Z: -hl}, {X: hw, Y: hh, Z: hl}, {X: -hw, Y: hh, Z: hl},
	}
	var out [8]vmath.Vec3F
	for i, c := range local {
		out[i] = vmath.V3FAdd(pos, vmath.V3FRotateY(c, heading))
	}
	return out
}

// car draws the body box, a roof cross in the wire color and the heading marker
func (b *sceneBuilder) car(sn engine.Snapshot) {
	// First-person eye sits inside the box
	if sn.Camera == engine.CameraFirstPerson {
		return
	}

	c := CarCorners(sn.Car.Position, sn.Car.Heading)
	for _, e := range carBoxEdges {
		b.line(c[e[0]], c[e[1]], RGBCar)
	}
	b.line(c[4], c[6], RGBCarWire)
	b.line(c[5], c[7], RGBCarWire)

	nose := vmath.V3FAdd(sn.Car.Position, vmath.V3FScale(sn.Car.Forward, parameter.CarBodyLength/2+parameter.CarNoseLength))
	b.line(sn.Car.Position, nose, RGBCarMarker)
}
