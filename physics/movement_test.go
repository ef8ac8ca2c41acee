package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-racer/vmath"
)

func TestCapSpeed(t *testing.T) {
	v := vmath.Vec3F{X: 300, Y: -4, Z: 400}
	if !CapSpeed(&v, 200) {
		t.Fatal("expected clamp")
	}
	if !vmath.ApproxEqual(vmath.V3FHorizontalMag(v), 200, 1e-9) {
		t.Errorf("expected magnitude 200, got %v", vmath.V3FHorizontalMag(v))
	}
	if !vmath.ApproxEqual(v.X/v.Z, 0.75, 1e-12) {
		t.Errorf("direction changed: %+v", v)
	}
	if v.Y != -4 {
		t.Errorf("vertical component altered: %v", v.Y)
	}
}

func TestCapSpeed_BelowLimit(t *testing.T) {
	v := vmath.Vec3F{X: 3, Z: 4}
	if CapSpeed(&v, 5) {
		t.Error("speed equal to limit should not clamp")
	}
	if CapSpeed(&v, 0) {
		t.Error("zero limit disables clamping")
	}
	if v != (vmath.Vec3F{X: 3, Z: 4}) {
		t.Errorf("velocity changed: %+v", v)
	}
}

func TestHeadingVector_UnitLength(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 0.37 {
		dir, ok := HeadingVector(deg)
		if !ok {
			t.Fatalf("heading %v reported degenerate", deg)
		}
		if !vmath.ApproxEqual(vmath.V3FMag(dir), 1, 1e-12) {
			t.Fatalf("heading %v: length %v", deg, vmath.V3FMag(dir))
		}
		if dir.Y != 0 {
			t.Fatalf("heading %v: non-horizontal forward %+v", deg, dir)
		}
	}
}

func TestHeadingVector_Degenerate(t *testing.T) {
	for _, deg := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := HeadingVector(deg); ok {
			t.Errorf("heading %v should be degenerate", deg)
		}
	}
}

func TestParseInertiaPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    InertiaPolicy
		wantErr bool
	}{
		{"arcade", InertiaArcade, false},
		{" Momentum ", InertiaMomentum, false},
		{"drift", InertiaMomentum, false},
		{"sim", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInertiaPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInertiaPolicy(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseInertiaPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if InertiaArcade.Toggle() != InertiaMomentum || InertiaMomentum.Toggle() != InertiaArcade {
		t.Error("Toggle should swap policies")
	}
}
