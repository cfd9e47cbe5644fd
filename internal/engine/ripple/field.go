package ripple

import "github.com/Faultbox/watchcore/pkg/math"

// Field holds the live waves and the per-pointer emission throttle.
type Field struct {
	params Params
	waves  []Wave // insertion order, len <= MaxWaves

	lastEmission map[PointerID]float64
	lastPosition map[PointerID]math.Vec2
}

// NewField creates an empty field.
func NewField(params Params) *Field {
	return &Field{
		params:       params,
		waves:        make([]Wave, 0, MaxWaves),
		lastEmission: make(map[PointerID]float64),
		lastPosition: make(map[PointerID]math.Vec2),
	}
}

// Params returns the field's tuning constants.
func (f *Field) Params() Params {
	return f.params
}

// Len returns the number of live waves.
func (f *Field) Len() int {
	return len(f.waves)
}

// Waves returns a copy of the live waves in insertion order.
func (f *Field) Waves() []Wave {
	out := make([]Wave, len(f.waves))
	copy(out, f.waves)
	return out
}

// AddWave emits a wave at pos for the given pointer, unless the pointer
// emitted less than Cooldown seconds ago or has not moved more than
// MinDistance since its last wave. The distance check is skipped for a
// pointer's first wave. When the field is full the weakest wave at now is
// replaced. AddWave reports whether a wave was added.
func (f *Field) AddWave(pos math.Vec2, id PointerID, now float64) bool {
	if last, ok := f.lastEmission[id]; ok && now-last < f.params.Cooldown {
		return false
	}
	if last, ok := f.lastPosition[id]; ok && pos.Distance(last) <= f.params.MinDistance {
		return false
	}

	if len(f.waves) >= MaxWaves {
		f.evictWeakest(now)
	}
	f.waves = append(f.waves, Wave{
		Origin:    pos,
		StartTime: now,
		Amplitude: f.params.Amplitude,
		Frequency: f.params.Frequency,
		Speed:     f.params.Speed,
	})

	f.lastEmission[id] = now
	f.lastPosition[id] = pos
	return true
}

// evictWeakest removes the wave with the lowest amplitude at now. Ties go
// to the earliest in insertion order.
func (f *Field) evictWeakest(now float64) {
	if len(f.waves) == 0 {
		return
	}
	weakest := 0
	weakestAmp := f.waves[0].CurrentAmplitude(now, f.params.Damping)
	for i := 1; i < len(f.waves); i++ {
		if amp := f.waves[i].CurrentAmplitude(now, f.params.Damping); amp < weakestAmp {
			weakest, weakestAmp = i, amp
		}
	}
	f.waves = append(f.waves[:weakest], f.waves[weakest+1:]...)
}

// Cleanup drops every wave whose amplitude at now has fallen below
// MinAmplitudeToRemove and returns how many were dropped. Call it once
// per frame before reading the uniforms.
func (f *Field) Cleanup(now float64) int {
	kept := f.waves[:0]
	for _, w := range f.waves {
		if w.CurrentAmplitude(now, f.params.Damping) >= f.params.MinAmplitudeToRemove {
			kept = append(kept, w)
		}
	}
	removed := len(f.waves) - len(kept)
	f.waves = kept
	return removed
}

// ReleasePointer forgets the throttle state of a pointer that went up, so
// the next touch with the same id is treated as a fresh tap.
func (f *Field) ReleasePointer(id PointerID) {
	delete(f.lastEmission, id)
	delete(f.lastPosition, id)
}

// Reset drops all waves and throttle state.
func (f *Field) Reset() {
	f.waves = f.waves[:0]
	clear(f.lastEmission)
	clear(f.lastPosition)
}

// ShaderUniforms snapshots the field at now. Live waves fill the slots in
// insertion order; the rest stay empty. It does not modify the field.
func (f *Field) ShaderUniforms(now float64) Uniforms {
	u := Uniforms{
		NumWaves:     int32(len(f.waves)),
		Damping:      float32(f.params.Damping),
		MinAmplitude: float32(f.params.MinVisibleAmplitude),
	}
	for i, w := range f.waves {
		u.Waves[i] = Slot{
			Origin:    w.Origin,
			Amplitude: float32(w.CurrentAmplitude(now, f.params.Damping)),
			Frequency: float32(w.Frequency),
			Speed:     float32(w.Speed),
			StartTime: float32(w.StartTime),
		}
	}
	return u
}
