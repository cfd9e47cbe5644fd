// Package solar computes the sun's approximate position and local
// altitude for day/night shading.
//
// The ephemeris is the low-precision orbital-elements method: a single
// first-order correction for the eccentric anomaly and no nutation or
// aberration. Results are good to a fraction of a degree, enough for a
// decorative terminator but not for navigation.
package solar

import (
	gomath "math"
	"time"

	"github.com/Faultbox/watchcore/pkg/math"
)

// Position is the sun's celestial position at one instant, along with
// the time terms needed to turn it into a local altitude.
type Position struct {
	RightAscensionHours        float64 // [0, 24)
	DeclinationDegrees         float64 // bounded by the obliquity
	GreenwichSiderealTimeHours float64 // GMST at 0h plus the sun's mean longitude term, [0, 24)
	HourOfDayDecimal           float64 // hour of day in the reference zone

	DaysSinceEpoch           float64
	EclipticLongitudeDegrees float64
	ObliquityDegrees         float64
}

// Calculator computes solar positions using a fixed reference zone for
// the calendar date and hour of day.
type Calculator struct {
	loc *time.Location
}

// NewCalculator returns a calculator that decomposes instants in loc.
// A nil loc means UTC, which is the correct basis for sidereal time.
// Other zones shift the terminator and exist only for parity with
// displays that were tuned against a local wall clock.
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// Location returns the reference zone.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Position computes the sun's position at t.
func (c *Calculator) Position(t time.Time) Position {
	local := t.In(c.loc)
	year, month, day := local.Date()
	return PositionAt(year, int(month), day, DecimalHour(local))
}

// Compute returns the sun's position at t using UTC as the reference zone.
func Compute(t time.Time) Position {
	u := t.UTC()
	year, month, day := u.Date()
	return PositionAt(year, int(month), day, DecimalHour(u))
}

// PositionAt computes the sun's position for a calendar date and decimal
// hour in the reference zone.
func PositionAt(year, month, day int, hour float64) Position {
	d := DaysSinceEpoch(year, month, day, hour)

	// Orbital elements: longitude of perihelion, eccentricity, mean
	// anomaly, obliquity of the ecliptic and the sun's mean longitude.
	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	M := math.NormalizeDegrees(356.0470 + 0.9856002585*d)
	oblecl := 23.4393 - 3.563e-7*d
	L := math.NormalizeDegrees(w + M)

	// Eccentric anomaly, one correction term.
	E := M + math.Degrees(e*math.SinDeg(M)*(1+e*math.CosDeg(M)))

	// Position in the orbital plane
	x := math.CosDeg(E) - e
	y := math.SinDeg(E) * gomath.Sqrt(1-e*e)
	r := gomath.Hypot(x, y)
	v := math.Atan2Deg(y, x)
	lon := math.NormalizeDegrees(v + w)

	// Ecliptic rectangular, z is zero for the sun
	x = r * math.CosDeg(lon)
	y = r * math.SinDeg(lon)

	// Rotate into equatorial coordinates
	xeq := x
	yeq := y * math.CosDeg(oblecl)
	zeq := y * math.SinDeg(oblecl)

	ra := math.NormalizeHours(math.Atan2Deg(yeq, xeq) / 15)
	decl := math.AsinDeg(zeq / r)
	gmst0 := math.NormalizeHours(L/15 + 12)

	return Position{
		RightAscensionHours:        ra,
		DeclinationDegrees:         decl,
		GreenwichSiderealTimeHours: gmst0,
		HourOfDayDecimal:           hour,
		DaysSinceEpoch:             d,
		EclipticLongitudeDegrees:   lon,
		ObliquityDegrees:           oblecl,
	}
}
