// Package ripple simulates the transient point waves behind the water
// distortion effect.
//
// A Field holds at most MaxWaves sources. Each wave's amplitude decays as
// Amplitude * Damping^(now - StartTime); nothing about a wave changes after
// it is created. The field is read once per frame as a fixed-arity block of
// shader uniforms.
//
// Field is not safe for concurrent use. It is meant to be driven from a
// single event/render loop.
package ripple

// MaxWaves is the number of wave slots in the shader uniform block.
const MaxWaves = 5

// Default design constants.
const (
	DefaultDamping              = 0.55
	DefaultAmplitude            = 80.0
	DefaultFrequency            = 0.06
	DefaultSpeed                = 900.0
	DefaultMinAmplitudeToRemove = 0.3
	DefaultMinVisibleAmplitude  = 1.0
	DefaultCooldown             = 0.05 // seconds
	DefaultMinDistance          = 15.0 // view units
)

// Params are the tuning constants of a Field.
type Params struct {
	Damping              float64 // per-second amplitude factor, 0 < Damping < 1
	Amplitude            float64 // initial amplitude of every wave
	Frequency            float64
	Speed                float64
	MinAmplitudeToRemove float64 // Cleanup drops waves below this
	MinVisibleAmplitude  float64 // handed to the shader for early exit
	Cooldown             float64 // minimum seconds between waves from one pointer
	MinDistance          float32 // minimum movement between waves from one pointer
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Damping:              DefaultDamping,
		Amplitude:            DefaultAmplitude,
		Frequency:            DefaultFrequency,
		Speed:                DefaultSpeed,
		MinAmplitudeToRemove: DefaultMinAmplitudeToRemove,
		MinVisibleAmplitude:  DefaultMinVisibleAmplitude,
		Cooldown:             DefaultCooldown,
		MinDistance:          DefaultMinDistance,
	}
}
