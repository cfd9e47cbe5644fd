package ripple

import (
	gomath "math"

	"github.com/Faultbox/watchcore/pkg/math"
)

// PointerID distinguishes concurrent pointers (mouse, touch fingers).
type PointerID int64

// Wave is a single point source. It is never modified after creation.
type Wave struct {
	Origin    math.Vec2
	StartTime float64 // simulation seconds
	Amplitude float64
	Frequency float64
	Speed     float64
}

// Age returns the seconds elapsed since the wave started.
func (w Wave) Age(now float64) float64 {
	return now - w.StartTime
}

// CurrentAmplitude returns the decayed amplitude at now.
func (w Wave) CurrentAmplitude(now, damping float64) float64 {
	return w.Amplitude * gomath.Pow(damping, w.Age(now))
}
