// Package vmath provides float vector and angle helpers shared by physics and render
package vmath

import (
	"math"
)

// Epsilon is the tolerance used for degenerate lengths and float comparisons
const Epsilon = 1e-9

const degToRad = math.Pi / 180.0

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad / degToRad
}

func SinDeg(deg float64) float64 {
	return math.Sin(deg * degToRad)
}

func CosDeg(deg float64) float64 {
	return math.Cos(deg * degToRad)
}

// ClampF restricts v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees maps an angle into (-180, 180]
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// ApproxEqual compares with an absolute tolerance
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Lerp blends a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
