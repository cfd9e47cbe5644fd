package ripple

import "github.com/Faultbox/watchcore/pkg/math"

// Slot is one wave's entry in the uniform block. The zero Slot is the
// empty sentinel: amplitude 0 at the view origin.
type Slot struct {
	Origin    math.Vec2
	Amplitude float32 // already decayed to the sampling time
	Frequency float32
	Speed     float32
	StartTime float32
}

// Uniforms is the fixed-layout parameter block for the ripple shader.
// Slots beyond NumWaves are always empty.
type Uniforms struct {
	Waves        [MaxWaves]Slot
	NumWaves     int32
	Damping      float32
	MinAmplitude float32
}

// Origins returns the slot origins packed as x0, y0, x1, y1, ...
func (u *Uniforms) Origins() [MaxWaves * 2]float32 {
	var out [MaxWaves * 2]float32
	for i, s := range u.Waves {
		out[2*i] = s.Origin.X
		out[2*i+1] = s.Origin.Y
	}
	return out
}

// Amplitudes returns the slot amplitudes in slot order.
func (u *Uniforms) Amplitudes() [MaxWaves]float32 {
	var out [MaxWaves]float32
	for i, s := range u.Waves {
		out[i] = s.Amplitude
	}
	return out
}

// Frequencies returns the slot frequencies in slot order.
func (u *Uniforms) Frequencies() [MaxWaves]float32 {
	var out [MaxWaves]float32
	for i, s := range u.Waves {
		out[i] = s.Frequency
	}
	return out
}

// Speeds returns the slot speeds in slot order.
func (u *Uniforms) Speeds() [MaxWaves]float32 {
	var out [MaxWaves]float32
	for i, s := range u.Waves {
		out[i] = s.Speed
	}
	return out
}

// StartTimes returns the slot start times in slot order.
func (u *Uniforms) StartTimes() [MaxWaves]float32 {
	var out [MaxWaves]float32
	for i, s := range u.Waves {
		out[i] = s.StartTime
	}
	return out
}
