package math

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * degToRad
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * radToDeg
}

// SinDeg is math.Sin for an angle in degrees.
func SinDeg(deg float64) float64 { return math.Sin(deg * degToRad) }

// CosDeg is math.Cos for an angle in degrees.
func CosDeg(deg float64) float64 { return math.Cos(deg * degToRad) }

// Atan2Deg is math.Atan2 returning degrees.
func Atan2Deg(y, x float64) float64 { return math.Atan2(y, x) * radToDeg }

// AsinDeg is math.Asin returning degrees.
func AsinDeg(x float64) float64 { return math.Asin(x) * radToDeg }

// Wrap maps x into [0, period). Non-finite input yields NaN.
func Wrap(x, period float64) float64 {
	r := math.Mod(x, period)
	if r < 0 {
		r += period
	}
	// -tiny + period rounds up to period
	if r >= period {
		r = 0
	}
	return r
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	return Wrap(deg, 360)
}

// NormalizeHours maps an hour value into [0, 24).
func NormalizeHours(h float64) float64 {
	return Wrap(h, 24)
}

// WrapLongitude maps a longitude into [-180, 180).
func WrapLongitude(deg float64) float64 {
	return Wrap(deg+180, 360) - 180
}
