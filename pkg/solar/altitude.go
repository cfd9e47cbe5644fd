package solar

import (
	gomath "math"

	"github.com/Faultbox/watchcore/pkg/math"
)

// LocalSiderealTimeHours returns the local sidereal time at a longitude
// (degrees, east positive), in [0, 24).
func (p Position) LocalSiderealTimeHours(longitude float64) float64 {
	return math.NormalizeHours(p.GreenwichSiderealTimeHours + p.HourOfDayDecimal + longitude/15)
}

// HourAngleDegrees returns the sun's hour angle at a longitude, in [0, 360).
func (p Position) HourAngleDegrees(longitude float64) float64 {
	return math.NormalizeHours(p.LocalSiderealTimeHours(longitude)-p.RightAscensionHours) * 15
}

// horizon rotates the sun's direction into the observer's horizon frame.
// x points south, y west, z to the zenith.
func (p Position) horizon(latitude, longitude float64) (x, y, z float64) {
	ha := p.HourAngleDegrees(longitude)
	decl := p.DeclinationDegrees

	// Hour angle and declination to rectangular
	hx := math.CosDeg(ha) * math.CosDeg(decl)
	hy := math.SinDeg(ha) * math.CosDeg(decl)
	hz := math.SinDeg(decl)

	// Rotate about the east-west axis by the latitude
	x = hx*math.SinDeg(latitude) - hz*math.CosDeg(latitude)
	y = hy
	z = hx*math.CosDeg(latitude) + hz*math.SinDeg(latitude)
	return x, y, z
}

// AltitudeDegrees returns the sun's altitude above the horizon at the given
// latitude and longitude, in degrees. Positive means the sun is up.
//
// Inputs are not validated; out-of-range coordinates give meaningless but
// finite results.
func AltitudeDegrees(latitude, longitude float64, p Position) float64 {
	x, y, z := p.horizon(latitude, longitude)
	return math.Atan2Deg(z, gomath.Hypot(x, y))
}

// AzimuthDegrees returns the sun's azimuth measured from north through
// east, in [0, 360).
func AzimuthDegrees(latitude, longitude float64, p Position) float64 {
	x, y, _ := p.horizon(latitude, longitude)
	return math.NormalizeDegrees(math.Atan2Deg(y, x) + 180)
}

// SunDirection returns a unit vector pointing at the sun in a local
// Y-up frame (x east, y up, z north), suitable as a light direction.
func SunDirection(latitude, longitude float64, p Position) math.Vec3 {
	alt := AltitudeDegrees(latitude, longitude, p)
	az := AzimuthDegrees(latitude, longitude, p)

	v := math.Vec3{
		X: float32(math.CosDeg(alt) * math.SinDeg(az)),
		Y: float32(math.SinDeg(alt)),
		Z: float32(math.CosDeg(alt) * math.CosDeg(az)),
	}
	return v.Normalize()
}

// SubsolarPoint returns the latitude and longitude where the sun is at
// the zenith. Longitude is in [-180, 180).
func SubsolarPoint(p Position) (latitude, longitude float64) {
	lon := (p.RightAscensionHours - p.GreenwichSiderealTimeHours - p.HourOfDayDecimal) * 15
	return p.DeclinationDegrees, math.WrapLongitude(lon)
}
