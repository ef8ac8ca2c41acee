package render

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

func testViewport() Viewport {
	return Viewport{Width: 100, Height: 50, CellAspect: 2}
}

func TestProjector_CenterAndHandedness(t *testing.T) {
	cam := Camera{Eye: vmath.Vec3F{}, Target: vmath.Vec3F{Z: 1}, Up: vmath.V3FUp, FovY: 90}
	p := NewProjector(cam, testViewport(), 0.1)

	center, depth, ok := p.Project(vmath.Vec3F{Z: 10})
	if !ok || math.Abs(center.X-50) > 1e-9 || math.Abs(center.Y-25) > 1e-9 || depth != 10 {
		t.Fatalf("center = %+v depth %v ok %v", center, depth, ok)
	}

	right, _, _ := p.Project(vmath.Vec3F{X: 1, Z: 10})
	if right.X <= center.X {
		t.Errorf("+X should project right of center, got %v", right.X)
	}
	up, _, _ := p.Project(vmath.Vec3F{Y: 1, Z: 10})
	if up.Y >= center.Y {
		t.Errorf("+Y should project above center, got %v", up.Y)
	}

	// fov 90: focal = half height, one unit at depth 10 spans 2.5 rows and 5 columns
	if math.Abs(up.Y-22.5) > 1e-9 || math.Abs(right.X-55) > 1e-9 {
		t.Errorf("unexpected scale: right %v up %v", right.X, up.Y)
	}
}

func TestProjector_RejectsBehind(t *testing.T) {
	cam := Camera{Target: vmath.Vec3F{Z: 1}, Up: vmath.V3FUp, FovY: 75}
	p := NewProjector(cam, testViewport(), 0.1)

	if _, _, ok := p.Project(vmath.Vec3F{Z: -5}); ok {
		t.Error("point behind camera should be rejected")
	}
	if _, _, _, ok := p.ProjectSegment(vmath.Vec3F{Z: -5}, vmath.Vec3F{X: 1, Z: -1}); ok {
		t.Error("segment behind camera should be rejected")
	}
}

func TestProjector_ClipsAtNearPlane(t *testing.T) {
	cam := Camera{Target: vmath.Vec3F{Z: 1}, Up: vmath.V3FUp, FovY: 75}
	p := NewProjector(cam, testViewport(), 1)

	a, b, depth, ok := p.ProjectSegment(vmath.Vec3F{Y: -1, Z: -9}, vmath.Vec3F{Y: -1, Z: 11})
	if !ok {
		t.Fatal("crossing segment should survive clipping")
	}
	for _, pt := range []Point2{a, b} {
		if math.IsInf(pt.Y, 0) || math.IsNaN(pt.Y) {
			t.Errorf("non-finite endpoint %+v", pt)
		}
	}
	if depth != 6 {
		t.Errorf("mean depth = %v, want 6", depth)
	}
}

func TestCameraFor(t *testing.T) {
	car := physics.NewCar(vmath.Vec3F{X: 3, Z: 4})
	sn := engine.Snapshot{Car: car}
	cfg := DefaultCameraConfig()

	chase := CameraFor(sn, cfg)
	if chase.Eye != (vmath.Vec3F{X: 3, Y: 2, Z: -6}) || chase.Target != car.Position {
		t.Errorf("chase camera = %+v", chase)
	}

	sn.Camera = engine.CameraFirstPerson
	fp := CameraFor(sn, cfg)
	want := vmath.V3FAdd(fp.Eye, car.Forward)
	if fp.Target != want || fp.Eye.Y != cfg.EyeHeight {
		t.Errorf("first-person camera = %+v", fp)
	}
}

func TestCameraBasisDegenerate(t *testing.T) {
	cam := Camera{Eye: vmath.Vec3F{Y: 10}, Target: vmath.Vec3F{}, Up: vmath.V3FUp, FovY: 75}
	right, up, fwd := cam.basis()
	for _, v := range []vmath.Vec3F{right, up, fwd} {
		if !vmath.ApproxEqual(vmath.V3FMag(v), 1, 1e-9) {
			t.Errorf("basis vector %+v not unit", v)
		}
	}
}

func TestBuildScene(t *testing.T) {
	sn := engine.Snapshot{Car: physics.NewCar(vmath.Vec3F{})}
	sc := BuildScene(sn, DefaultSceneConfig(testViewport()))

	if len(sc.Segments) == 0 {
		t.Fatal("empty scene")
	}
	for i := 1; i < len(sc.Segments); i++ {
		if sc.Segments[i].Depth > sc.Segments[i-1].Depth {
			t.Fatalf("segments not sorted far to near at %d", i)
		}
	}

	var carEdges, marker int
	for _, s := range sc.Segments {
		switch s.Color {
		case RGBCar:
			carEdges++
		case RGBCarMarker:
			marker++
		}
	}
	if carEdges != 12 || marker != 1 {
		t.Errorf("car edges %d marker %d, want 12 and 1", carEdges, marker)
	}
}

func TestBuildScene_FirstPersonHidesCar(t *testing.T) {
	sn := engine.Snapshot{Car: physics.NewCar(vmath.Vec3F{}), Camera: engine.CameraFirstPerson}
	cfg := DefaultSceneConfig(testViewport())
	cfg.Fog = false
	sc := BuildScene(sn, cfg)

	for _, s := range sc.Segments {
		if s.Color == RGBCar || s.Color == RGBCarMarker {
			t.Fatal("car drawn from first-person view")
		}
	}
}

func TestCarCorners_FollowHeading(t *testing.T) {
	c := CarCorners(vmath.Vec3F{}, 90)
	// front right bottom corner: local (0.5, -0.25, 1) rotated 90 deg -> (1, -0.25, -0.5)
	if !vmath.ApproxEqual(c[2].X, 1, 1e-9) || !vmath.ApproxEqual(c[2].Z, -0.5, 1e-9) {
		t.Errorf("corner 2 = %+v", c[2])
	}
}

func TestBuildHUD(t *testing.T) {
	p := physics.DefaultParams()
	car := physics.NewCar(vmath.Vec3F{X: 200, Z: -200})
	car.Speed = 12.5
	sn := engine.Snapshot{Car: car, Params: p, Paused: true, FPS: 143.6}

	h := BuildHUD(sn, DefaultHUDConfig(120, 40))

	var all []string
	for _, l := range h.Lines {
		all = append(all, l.Text)
	}
	joined := strings.Join(all, "\n")
	for _, want := range []string{"BILLYSHOOLIGANS", "FPS: 144", "Speed: 12.50", "Mode: [A] arcade", "Camera: chase", "PAUSED"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q in:\n%s", want, joined)
		}
	}

	hint := h.Lines[len(h.Lines)-1]
	if hint.Y != 39 {
		t.Errorf("hint row = %d, want 39", hint.Y)
	}

	// +X edge, -Z edge -> bottom right of the map
	m := h.Minimap
	if m.DotX != m.X+m.W-1 || m.DotY != m.Y+m.H-1 {
		t.Errorf("minimap dot (%d,%d) in %+v", m.DotX, m.DotY, m.Rect)
	}
}

func TestBuildHUD_NarrowScreen(t *testing.T) {
	sn := engine.Snapshot{Car: physics.NewCar(vmath.Vec3F{}), Params: physics.DefaultParams()}
	h := BuildHUD(sn, DefaultHUDConfig(10, 5))

	for _, l := range h.Lines {
		if len([]rune(l.Text)) > 10 {
			t.Errorf("line %q wider than screen", l.Text)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	if got := Lerp(RGBBlack, RGB{200, 100, 50}, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Lerp = %+v", got)
	}
	if got := Fog(RGBCar, RGBBackground, 5, 20, 220); got != RGBCar {
		t.Errorf("Fog near = %+v", got)
	}
	if got := Fog(RGBCar, RGBBackground, 500, 20, 220); got != RGBBackground {
		t.Errorf("Fog far = %+v", got)
	}
	if got := Grayscale(RGB{255, 255, 255}); got != (RGB{255, 255, 255}) {
		t.Errorf("Grayscale white = %+v", got)
	}
}
