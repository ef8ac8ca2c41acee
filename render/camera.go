package render

import (
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Camera is a look-at perspective camera
type Camera struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
	Up     vmath.Vec3F
	FovY   float64 // degrees
}

// CameraConfig holds placement of both camera modes
type CameraConfig struct {
	ChaseOffset vmath.Vec3F
	EyeHeight   float64
	FovY        float64
}

// DefaultCameraConfig returns the stock camera placement
func DefaultCameraConfig() CameraConfig {
	o := parameter.CameraChaseOffset
	return CameraConfig{
		ChaseOffset: vmath.Vec3F{X: o[0], Y: o[1], Z: o[2]},
		EyeHeight:   parameter.CameraEyeHeight,
		FovY:        parameter.CameraFovY,
	}
}

// ChaseCamera sits at a fixed world offset from the car, looking at it
func ChaseCamera(car physics.Car, offset vmath.Vec3F, fovY float64) Camera {
	return Camera{
		Eye:    vmath.V3FAdd(car.Position, offset),
		Target: car.Position,
		Up:     vmath.V3FUp,
		FovY:   fovY,
	}
}

// FirstPersonCamera sits above the car origin, looking along its forward vector
func FirstPersonCamera(car physics.Car, eyeHeight, fovY float64) Camera {
	eye := vmath.V3FAdd(car.Position, vmath.Vec3F{Y: eyeHeight})
	return Camera{
		Eye:    eye,
		Target: vmath.V3FAdd(eye, car.Forward),
		Up:     vmath.V3FUp,
		FovY:   fovY,
	}
}

// CameraFor picks the camera for the snapshot's mode
func CameraFor(sn engine.Snapshot, cfg CameraConfig) Camera {
	if sn.Camera == engine.CameraFirstPerson {
		return FirstPersonCamera(sn.Car, cfg.EyeHeight, cfg.FovY)
	}
	return ChaseCamera(sn.Car, cfg.ChaseOffset, cfg.FovY)
}

// basis returns the right, up and forward unit vectors of the view
// Right is up x forward so world +X lands on screen right for a camera facing +Z
func (c Camera) basis() (right, up, fwd vmath.Vec3F) {
	fwd = vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Eye))
	if fwd == (vmath.Vec3F{}) {
		fwd = vmath.Vec3F{Z: 1}
	}
	right = vmath.V3FNormalize(vmath.V3FCross(c.Up, fwd))
	if right == (vmath.Vec3F{}) {
		right = vmath.Vec3F{X: 1}
	}
	up = vmath.V3FCross(fwd, right)
	return right, up, fwd
}
