package parameter

// HUD Layout (terminal cells or debug-font lines)
const (
	// HUDTitle is the banner drawn at the top of the HUD panel
	HUDTitle = "BILLYSHOOLIGANS"

	// HUDPanelWidth is the HUD panel width in terminal cells
	HUDPanelWidth = 44

	// HUDMinimapWidth and HUDMinimapHeight size the top-down track map in cells
	HUDMinimapWidth  = 20
	HUDMinimapHeight = 7

	// HUDControlHint lists the default key bindings
	HUDControlHint = "w/s:throttle a/d:steer c:camera m:inertia r:reset p:pause q:quit"

	// WindowCharWidth and WindowLineHeight are the debug font cell size in pixels
	WindowCharWidth  = 6
	WindowLineHeight = 16
)

// Track & Grid
const (
	// TrackPlaneSize is the side of the generated plane mesh before scaling
	TrackPlaneSize = 40.0

	// TrackPlaneScale is the XZ scale applied when the plane is drawn
	TrackPlaneScale = 10.0

	// TrackPlaneY is the height of the track plane (the car floats above it)
	TrackPlaneY = -1.3

	// TrackStripeSpacing is the distance between painted stripes across the plane
	TrackStripeSpacing = 20.0

	// GridSlices and GridSpacing describe the reference grid around the origin
	GridSlices  = 20
	GridSpacing = 1.0
)

// Window defaults
const (
	WindowWidth      = 1920
	WindowHeight     = 1200
	WindowFullscreen = true
	WindowTitle      = "vi-racer"
)

// Scene depth cueing
const (
	// FogStart and FogEnd bound the distance over which line color fades toward the background
	FogStart = 20.0
	FogEnd   = 220.0

	// CarNoseLength is the length of the heading marker drawn ahead of the car body
	CarNoseLength = 1.5
)
