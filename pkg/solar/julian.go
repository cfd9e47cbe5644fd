package solar

import "time"

// DaysSinceEpoch returns the number of days since 2000 Jan 0.0 UT
// (JD 2451543.5) for a calendar date plus a decimal hour of day.
//
// The day count uses integer arithmetic without the Gregorian century
// correction, so it is exact only between March 1900 and February 2100.
func DaysSinceEpoch(year, month, day int, hour float64) float64 {
	d := 367*year - 7*(year+(month+9)/12)/4 + 275*month/9 + day - 730530
	return float64(d) + hour/24
}

// DecimalHour returns the hour of day of t in t's own location,
// including minutes, seconds and nanoseconds as a fraction.
func DecimalHour(t time.Time) float64 {
	return float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3.6e12
}
