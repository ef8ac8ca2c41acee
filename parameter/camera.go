package parameter

// Camera placement defaults
const (
	// CameraFovY is the vertical field of view in degrees
	CameraFovY = 75.0

	// CameraEyeHeight is the first-person eye height above the car origin
	CameraEyeHeight = 0.6

	// CameraNearPlane rejects geometry closer than this to the eye
	CameraNearPlane = 0.1
)

// CameraChaseOffset is the world-space offset of the chase camera from the car
var CameraChaseOffset = [3]float64{0.0, 2.0, -10.0}
