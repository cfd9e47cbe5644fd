package solar

import (
	gomath "math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	meeussolar "github.com/soniakeys/meeus/v3/solar"
)

func TestDaysSinceEpoch(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		hour  float64
		want  float64
	}{
		{"2000 Jan 1.0", 2000, 1, 1, 0, 1},
		{"2000 Jan 1.5", 2000, 1, 1, 12, 1.5},
		{"1999 Dec 31", 1999, 12, 31, 0, 0},
		{"1990 Apr 19", 1990, 4, 19, 0, -3543},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysSinceEpoch(tt.year, tt.month, tt.day, tt.hour)
			if gomath.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DaysSinceEpoch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysSinceEpochMatchesJulianDate(t *testing.T) {
	instants := []time.Time{
		time.Date(1950, time.July, 4, 6, 30, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2091, time.November, 17, 3, 15, 0, 0, time.UTC),
	}

	for _, ts := range instants {
		y, m, d := ts.Date()
		got := DaysSinceEpoch(y, int(m), d, DecimalHour(ts))
		want := julian.TimeToJD(ts) - 2451543.5
		if gomath.Abs(got-want) > 1e-6 {
			t.Errorf("%s: DaysSinceEpoch() = %v, julian date gives %v", ts, got, want)
		}
	}
}

func TestDecimalHour(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 13, 30, 36, 0, time.UTC)
	if got := DecimalHour(ts); gomath.Abs(got-13.51) > 1e-12 {
		t.Errorf("DecimalHour() = %v, want 13.51", got)
	}
}

func TestPositionAgainstMeeus(t *testing.T) {
	instants := []time.Time{
		time.Date(2003, time.March, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2015, time.June, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2020, time.October, 1, 18, 45, 0, 0, time.UTC),
		time.Date(2024, time.December, 21, 9, 0, 0, 0, time.UTC),
		time.Date(2031, time.August, 9, 3, 0, 0, 0, time.UTC),
	}

	for _, ts := range instants {
		p := Compute(ts)
		ra, dec := meeussolar.ApparentEquatorial(julian.TimeToJD(ts))

		if diff := gomath.Abs(p.DeclinationDegrees - dec.Deg()); diff > 0.1 {
			t.Errorf("%s: declination %.4f, meeus %.4f", ts, p.DeclinationDegrees, dec.Deg())
		}

		wantRA := ra.Rad() * 12 / gomath.Pi
		diff := gomath.Abs(p.RightAscensionHours - wantRA)
		if diff > 12 {
			diff = 24 - diff
		}
		if diff > 0.01 {
			t.Errorf("%s: right ascension %.4fh, meeus %.4fh", ts, p.RightAscensionHours, wantRA)
		}
	}
}

func TestPositionRanges(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365*4; i++ {
		p := Compute(start.Add(time.Duration(i) * 6 * time.Hour))

		if p.RightAscensionHours < 0 || p.RightAscensionHours >= 24 {
			t.Fatalf("right ascension %v out of [0, 24)", p.RightAscensionHours)
		}
		if p.GreenwichSiderealTimeHours < 0 || p.GreenwichSiderealTimeHours >= 24 {
			t.Fatalf("sidereal time %v out of [0, 24)", p.GreenwichSiderealTimeHours)
		}
		if gomath.Abs(p.DeclinationDegrees) > p.ObliquityDegrees+1e-9 {
			t.Fatalf("declination %v exceeds obliquity %v", p.DeclinationDegrees, p.ObliquityDegrees)
		}
	}
}

func TestPositionDeterministic(t *testing.T) {
	ts := time.Date(2022, time.April, 2, 8, 0, 0, 0, time.UTC)
	if Compute(ts) != Compute(ts) {
		t.Error("Compute() is not deterministic")
	}
}

func TestCalculatorLocation(t *testing.T) {
	if NewCalculator(nil).Location() != time.UTC {
		t.Error("nil location should default to UTC")
	}

	ts := time.Date(2024, time.March, 20, 17, 0, 0, 0, time.UTC)
	eastern := NewCalculator(time.FixedZone("EST", -5*3600))

	utc := Compute(ts)
	shifted := eastern.Position(ts)
	if gomath.Abs(utc.HourOfDayDecimal-17) > 1e-9 {
		t.Errorf("UTC hour = %v, want 17", utc.HourOfDayDecimal)
	}
	if gomath.Abs(shifted.HourOfDayDecimal-12) > 1e-9 {
		t.Errorf("EST hour = %v, want 12", shifted.HourOfDayDecimal)
	}
	// Same calendar day, so the zone only moves the clock term back five hours.
	if gomath.Abs(utc.DaysSinceEpoch-shifted.DaysSinceEpoch-5.0/24) > 1e-9 {
		t.Errorf("day offset = %v, want 5/24", utc.DaysSinceEpoch-shifted.DaysSinceEpoch)
	}
}

func TestComputeIgnoresInputZone(t *testing.T) {
	utc := NewCalculator(nil)
	tests := []struct {
		name string
		at   time.Time
	}{
		{"utc", time.Date(2024, time.June, 21, 3, 30, 0, 0, time.UTC)},
		{"tokyo crosses date", time.Date(2024, time.June, 21, 7, 15, 0, 0, time.FixedZone("JST", 9*3600))},
		{"honolulu", time.Date(2023, time.December, 31, 20, 0, 0, 0, time.FixedZone("HST", -10*3600))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Compute(tt.at), utc.Position(tt.at); got != want {
				t.Errorf("Compute() = %+v, want %+v", got, want)
			}
		})
	}
}
