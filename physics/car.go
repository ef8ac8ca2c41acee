package physics

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// InertiaPolicy selects how velocity evolves between frames
type InertiaPolicy uint8

const (
	// InertiaArcade recomputes velocity from current input every frame, the car stops when keys are released
	InertiaArcade InertiaPolicy = iota
	// InertiaMomentum integrates longitudinal speed over time, the car coasts when keys are released
	InertiaMomentum
)

func (p InertiaPolicy) String() string {
	switch p {
	case InertiaArcade:
		return "arcade"
	case InertiaMomentum:
		return "momentum"
	default:
		return fmt.Sprintf("inertia(%d)", uint8(p))
	}
}

// ParseInertiaPolicy resolves a policy name, case-insensitive
func ParseInertiaPolicy(s string) (InertiaPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arcade":
		return InertiaArcade, nil
	case "momentum", "drift":
		return InertiaMomentum, nil
	}
	return 0, fmt.Errorf("unknown inertia policy %q", s)
}

// Toggle returns the other policy
func (p InertiaPolicy) Toggle() InertiaPolicy {
	if p == InertiaMomentum {
		return InertiaArcade
	}
	return InertiaMomentum
}

// Params holds car tuning, fixed for the lifetime of a session
type Params struct {
	MaxSpeed         float64
	AccelerationRate float64
	BrakingRate      float64
	TurnSpeed        float64 // degrees per second
	Downforce        float64

	// SteeringLock bounds heading to [-SteeringLock, SteeringLock] degrees, 0 disables
	SteeringLock float64
	ClampSpeed   bool

	Inertia        InertiaPolicy
	ArcadeResponse float64 // seconds, arcade speed = acceleration * ArcadeResponse
	CoastDrag      float64 // fraction of speed lost per second, momentum only
	GroundY        float64
}

// DefaultParams returns the stock demo tuning
func DefaultParams() Params {
	return Params{
		MaxSpeed:         parameter.CarMaxSpeed,
		AccelerationRate: parameter.CarAccelerationRate,
		BrakingRate:      parameter.CarBrakingRate,
		TurnSpeed:        parameter.CarTurnSpeed,
		Downforce:        parameter.CarDownforce,
		SteeringLock:     parameter.CarSteeringLock,
		ClampSpeed:       true,
		Inertia:          InertiaArcade,
		ArcadeResponse:   parameter.CarArcadeResponse,
		CoastDrag:        parameter.CarCoastDrag,
		GroundY:          parameter.CarGroundY,
	}
}

// Controls is the per-frame held state of the four driving keys
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether any driving key is held
func (c Controls) Any() bool {
	return c.Forward || c.Backward || c.Left || c.Right
}

// Car is the single mutable vehicle record
type Car struct {
	Position     vmath.Vec3F
	Velocity     vmath.Vec3F
	Acceleration vmath.Vec3F

	// Heading is yaw in degrees, 0 faces +Z, positive turns toward +X
	Heading float64
	// Forward is the unit direction derived from Heading, kept when derivation degenerates
	Forward vmath.Vec3F
	// Speed is the horizontal velocity magnitude, derived each update
	Speed float64
}

// NewCar returns a car at rest at pos, facing +Z
func NewCar(pos vmath.Vec3F) Car {
	return Car{
		Position: pos,
		Forward:  vmath.Vec3F{X: 0, Y: 0, Z: 1},
	}
}

// LongitudinalAccel returns the car-frame throttle/brake acceleration
func (c *Car) LongitudinalAccel() float64 {
	return c.Acceleration.Z
}
