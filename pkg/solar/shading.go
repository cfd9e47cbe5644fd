package solar

import gomath "math"

const (
	// MaxNightAlpha is the overlay opacity of full night.
	MaxNightAlpha = 0.42

	// DefaultBlurBand is the half-width, in degrees of solar altitude,
	// of the soft edge along the terminator.
	DefaultBlurBand = 6.0
)

// Shading maps solar altitude to night-overlay opacity.
type Shading struct {
	MaxAlpha float64
	BlurBand float64
}

// DefaultShading returns the stock opacity and blur band.
func DefaultShading() Shading {
	return Shading{MaxAlpha: MaxNightAlpha, BlurBand: DefaultBlurBand}
}

// Alpha returns the overlay opacity for a solar altitude.
//
// Below -BlurBand the result is MaxAlpha, above +BlurBand it is 0, and
// inside the band it falls linearly. A zero band gives a hard edge.
func (s Shading) Alpha(altitude float64) float64 {
	blur := gomath.Abs(s.BlurBand)
	switch {
	case altitude < -blur:
		return s.MaxAlpha
	case altitude > blur:
		return 0
	case blur == 0:
		return s.MaxAlpha / 2
	}
	return s.MaxAlpha * (1 - (altitude+blur)/(2*blur))
}

// NightAlpha returns the overlay opacity for a solar altitude using
// MaxNightAlpha and the given blur band.
func NightAlpha(altitude, blurBandDegrees float64) float64 {
	return Shading{MaxAlpha: MaxNightAlpha, BlurBand: blurBandDegrees}.Alpha(altitude)
}
