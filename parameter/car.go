package parameter

// Car tuning defaults, matching the stock demo car
const (
	// CarMaxSpeed is the horizontal speed cap in world units per second
	CarMaxSpeed = 200.0

	// CarAccelerationRate is the forward acceleration while throttle is held
	CarAccelerationRate = 50.0

	// CarBrakingRate is the reverse acceleration while brake is held
	CarBrakingRate = 50.0

	// CarTurnSpeed is the heading change rate in degrees per second
	CarTurnSpeed = 90.0

	// CarDownforce is the vertical deceleration term, inert at zero
	CarDownforce = 0.0

	// CarSteeringLock is the maximum heading deviation from neutral in degrees
	// Zero disables the clamp and lets the car turn freely
	CarSteeringLock = 15.0

	// CarArcadeResponse converts acceleration into the instantaneous arcade speed (seconds)
	CarArcadeResponse = 1.0

	// CarCoastDrag is the fraction of longitudinal speed lost per second while coasting (momentum only)
	CarCoastDrag = 0.0

	// CarGroundY is the height of the drivable surface
	CarGroundY = 0.0
)

// Car body dimensions used by the wireframe, world units
const (
	CarBodyWidth  = 1.0
	CarBodyHeight = 0.5
	CarBodyLength = 2.0
)
