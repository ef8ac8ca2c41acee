package render

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Scene palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBBackground = RGB{245, 245, 245}
	RGBTrack      = RGB{70, 70, 80}
	RGBStripe     = RGB{230, 230, 230}
	RGBGrid       = RGB{130, 130, 140}
	RGBCar        = RGB{230, 41, 55}
	RGBCarWire    = RGB{80, 20, 25}
	RGBCarMarker  = RGB{0, 228, 48}
	RGBHUDPanel   = RGB{130, 130, 130}
	RGBHUDText    = RGB{0, 0, 0}
	RGBHUDTitle   = RGB{255, 255, 255}
	RGBHUDDim     = RGB{90, 90, 100}
	RGBHUDAlert   = RGB{255, 200, 50}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: clamp(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: clamp(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: clamp(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Grayscale converts RGB to grayscale using Rec. 601 luma coefficients
// Integer math: (R*299 + G*587 + B*114) / 1000
func Grayscale(c RGB) RGB {
	gray := uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
	return RGB{R: gray, G: gray, B: gray}
}

// Fog fades c toward bg with distance between start and end
func Fog(c, bg RGB, dist, start, end float64) RGB {
	if dist <= start || end <= start {
		return c
	}
	return Lerp(c, bg, (dist-start)/(end-start))
}
