package physics

import (
	"math"

	"github.com/lixenwraith/vi-racer/vmath"
)

// CapSpeed limits the horizontal (XZ) magnitude of v to maxSpeed
// Returns true if velocity was clamped, vertical component is untouched
func CapSpeed(v *vmath.Vec3F, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	magSq := v.X*v.X + v.Z*v.Z
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	mag := math.Sqrt(magSq)
	if mag == 0 {
		return false
	}
	scale := maxSpeed / mag
	v.X *= scale
	v.Z *= scale
	return true
}

// HeadingVector derives the unit forward vector for a heading in degrees
// The result is renormalized explicitly; ok is false when the raw vector is degenerate
func HeadingVector(deg float64) (dir vmath.Vec3F, ok bool) {
	x := vmath.SinDeg(deg)
	z := vmath.CosDeg(deg)

	length := math.Sqrt(x*x + z*z)
	if !(length > vmath.Epsilon) {
		return vmath.Vec3F{}, false
	}
	return vmath.Vec3F{X: x / length, Y: 0, Z: z / length}, true
}
