package physics

import (
	"math"

	"github.com/lixenwraith/vi-racer/vmath"
)

// Update advances the car by dt seconds under the held controls
// Integration is explicit: Δv = a·Δt, Δp = v·Δt
// A negative or NaN dt is a no-op; a zero dt only refreshes acceleration from the controls
func Update(car *Car, p *Params, dt float64, in Controls) {
	if !(dt >= 0) {
		return
	}

	accel := longitudinalAccel(p, in)
	car.Acceleration = vmath.Vec3F{Z: accel}
	if dt == 0 {
		return
	}

	// Steering
	prevForward := car.Forward
	if in.Left {
		car.Heading -= p.TurnSpeed * dt
	}
	if in.Right {
		car.Heading += p.TurnSpeed * dt
	}
	if p.SteeringLock > 0 {
		car.Heading = vmath.ClampF(car.Heading, -p.SteeringLock, p.SteeringLock)
	} else {
		car.Heading = vmath.WrapDegrees(car.Heading)
	}

	if dir, ok := HeadingVector(car.Heading); ok {
		car.Forward = dir
	} else if vmath.V3FMagSq(car.Forward) == 0 {
		car.Forward = vmath.Vec3F{Z: 1}
	}

	// Horizontal velocity
	var longSpeed float64
	switch p.Inertia {
	case InertiaMomentum:
		horizontal := vmath.Vec3F{X: car.Velocity.X, Z: car.Velocity.Z}
		longSpeed = vmath.V3FDot(horizontal, prevForward) + accel*dt
		if p.CoastDrag > 0 {
			longSpeed *= math.Max(0, 1-p.CoastDrag*dt)
		}
	default:
		longSpeed = accel * p.ArcadeResponse
	}
	car.Velocity.X = car.Forward.X * longSpeed
	car.Velocity.Z = car.Forward.Z * longSpeed

	if p.ClampSpeed && CapSpeed(&car.Velocity, p.MaxSpeed) {
		car.Speed = p.MaxSpeed
	} else {
		car.Speed = vmath.V3FHorizontalMag(car.Velocity)
		// Rescaled or near-limit components can round a few ULPs past the cap
		if p.ClampSpeed && p.MaxSpeed > 0 && car.Speed > p.MaxSpeed {
			car.Speed = p.MaxSpeed
		}
	}

	// Position
	car.Position.X += car.Velocity.X * dt
	car.Position.Z += car.Velocity.Z * dt
	car.Position.Y += car.Velocity.Y * dt
	if car.Position.Y <= p.GroundY {
		car.Position.Y = p.GroundY
		if car.Velocity.Y < 0 {
			car.Velocity.Y = 0
		}
	}

	// Downforce, applied after integration so it acts from the next frame
	car.Velocity.Y -= p.Downforce * dt
}

// longitudinalAccel maps the pedals to forward acceleration, throttle wins over brake
func longitudinalAccel(p *Params, in Controls) float64 {
	switch {
	case in.Forward:
		return p.AccelerationRate
	case in.Backward:
		return -p.BrakingRate
	}
	return 0
}
