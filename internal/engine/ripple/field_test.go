package ripple

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/watchcore/pkg/math"
)

func TestCurrentAmplitude(t *testing.T) {
	w := Wave{StartTime: 2, Amplitude: 80}

	tests := []float64{0, 0.5, 1, 3.7, 9}
	for _, dt := range tests {
		got := w.CurrentAmplitude(2+dt, 0.55)
		want := 80 * gomath.Pow(0.55, dt)
		if gomath.Abs(got-want) > 1e-9 {
			t.Errorf("CurrentAmplitude(+%v) = %v, want %v", dt, got, want)
		}
	}
}

func TestCurrentAmplitudeIndependentOfOtherWaves(t *testing.T) {
	f := NewField(DefaultParams())
	f.AddWave(math.Vec2{X: 10, Y: 10}, 1, 0)
	alone := f.Waves()[0].CurrentAmplitude(1.5, f.Params().Damping)

	for i := 2; i <= 4; i++ {
		f.AddWave(math.Vec2{X: float32(100 * i), Y: 10}, PointerID(i), 0.1*float64(i))
	}
	crowded := f.Waves()[0].CurrentAmplitude(1.5, f.Params().Damping)
	if alone != crowded {
		t.Errorf("amplitude changed with more waves: %v vs %v", alone, crowded)
	}
}

func TestAddWaveFirstTapAccepted(t *testing.T) {
	f := NewField(DefaultParams())
	if !f.AddWave(math.Vec2{X: 5, Y: 5}, 0, 1) {
		t.Fatal("first wave for a pointer should be accepted")
	}
	w := f.Waves()[0]
	if w.StartTime != 1 || w.Amplitude != DefaultAmplitude || w.Origin != (math.Vec2{X: 5, Y: 5}) {
		t.Errorf("unexpected wave %+v", w)
	}
}

func TestAddWaveThrottling(t *testing.T) {
	tests := []struct {
		name      string
		second    math.Vec2
		secondAt  float64
		wantWaves int
	}{
		{"within cooldown, no movement", math.Vec2{X: 100, Y: 100}, 0.51, 1},
		{"within cooldown, moved", math.Vec2{X: 200, Y: 100}, 0.51, 1},
		{"after cooldown, no movement", math.Vec2{X: 100, Y: 100}, 1.5, 1},
		{"after cooldown, moved too little", math.Vec2{X: 110, Y: 100}, 1.5, 1},
		{"after cooldown, moved exactly min distance", math.Vec2{X: 115, Y: 100}, 1.5, 1},
		{"after cooldown, moved enough", math.Vec2{X: 120, Y: 100}, 1.5, 2},
		{"at cooldown, moved enough", math.Vec2{X: 120, Y: 100}, 0.55, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField(DefaultParams())
			f.AddWave(math.Vec2{X: 100, Y: 100}, 7, 0.5)
			f.AddWave(tt.second, 7, tt.secondAt)
			if f.Len() != tt.wantWaves {
				t.Errorf("Len() = %d, want %d", f.Len(), tt.wantWaves)
			}
		})
	}
}

func TestAddWavePointersIndependent(t *testing.T) {
	f := NewField(DefaultParams())
	f.AddWave(math.Vec2{X: 50, Y: 50}, 1, 0)
	if !f.AddWave(math.Vec2{X: 50, Y: 50}, 2, 0) {
		t.Error("a second pointer should not be throttled by the first")
	}
}

func TestReleasePointer(t *testing.T) {
	f := NewField(DefaultParams())
	f.AddWave(math.Vec2{X: 50, Y: 50}, 1, 0)
	if f.AddWave(math.Vec2{X: 50, Y: 50}, 1, 1) {
		t.Fatal("stationary pointer should be throttled")
	}

	f.ReleasePointer(1)
	if !f.AddWave(math.Vec2{X: 50, Y: 50}, 1, 1) {
		t.Error("tap after release should be accepted")
	}
	if len(f.lastEmission) != 1 || len(f.lastPosition) != 1 {
		t.Errorf("throttle state size = %d/%d, want 1/1", len(f.lastEmission), len(f.lastPosition))
	}
}

func TestCapacity(t *testing.T) {
	f := NewField(DefaultParams())
	for i := 0; i < 20; i++ {
		f.AddWave(math.Vec2{X: float32(i * 40), Y: 0}, PointerID(i%3), float64(i))
		if f.Len() > MaxWaves {
			t.Fatalf("Len() = %d after %d adds, exceeds %d", f.Len(), i+1, MaxWaves)
		}
	}
	if f.Len() != MaxWaves {
		t.Errorf("Len() = %d, want %d", f.Len(), MaxWaves)
	}
}

func TestEvictionRemovesWeakest(t *testing.T) {
	f := NewField(DefaultParams())
	// Same start time, distinct amplitudes: the decay factor is shared, so
	// the ordering at any time follows the initial amplitudes.
	f.waves = []Wave{
		{Origin: math.Vec2{X: 1}, Amplitude: 50},
		{Origin: math.Vec2{X: 2}, Amplitude: 70},
		{Origin: math.Vec2{X: 3}, Amplitude: 20},
		{Origin: math.Vec2{X: 4}, Amplitude: 90},
		{Origin: math.Vec2{X: 5}, Amplitude: 40},
	}

	if !f.AddWave(math.Vec2{X: 6}, 0, 1) {
		t.Fatal("AddWave rejected")
	}

	want := []float32{1, 2, 4, 5, 6}
	got := f.Waves()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i, w := range got {
		if w.Origin.X != want[i] {
			t.Errorf("slot %d origin = %v, want %v", i, w.Origin.X, want[i])
		}
	}
}

func TestEvictionUsesDecayedAmplitude(t *testing.T) {
	f := NewField(DefaultParams())
	// The second wave started strongest but is oldest, so it is weakest now.
	f.waves = []Wave{
		{Origin: math.Vec2{X: 1}, StartTime: 4, Amplitude: 30},
		{Origin: math.Vec2{X: 2}, StartTime: 0, Amplitude: 80},
		{Origin: math.Vec2{X: 3}, StartTime: 3, Amplitude: 80},
		{Origin: math.Vec2{X: 4}, StartTime: 4, Amplitude: 80},
		{Origin: math.Vec2{X: 5}, StartTime: 2, Amplitude: 80},
	}

	f.AddWave(math.Vec2{X: 6}, 0, 5)
	for _, w := range f.Waves() {
		if w.Origin.X == 2 {
			t.Fatal("weakest wave at insertion time was not evicted")
		}
	}
}

func TestEvictionTieFirstFound(t *testing.T) {
	f := NewField(DefaultParams())
	for i := 1; i <= MaxWaves; i++ {
		f.waves = append(f.waves, Wave{Origin: math.Vec2{X: float32(i)}, Amplitude: 80})
	}
	f.AddWave(math.Vec2{X: 9}, 0, 0)
	if f.Waves()[0].Origin.X != 2 {
		t.Errorf("first slot = %v, want the first tied wave evicted", f.Waves()[0].Origin.X)
	}
}

func TestCleanupRemovesOnlyDecayed(t *testing.T) {
	p := DefaultParams()
	f := NewField(p)
	for i := 0; i < MaxWaves; i++ {
		f.AddWave(math.Vec2{X: float32(i * 100)}, PointerID(i), float64(i)*3)
	}

	now := 14.0
	before := f.Waves()
	removed := f.Cleanup(now)

	for _, w := range f.Waves() {
		if w.CurrentAmplitude(now, p.Damping) < p.MinAmplitudeToRemove {
			t.Errorf("wave started at %v kept with amplitude %v", w.StartTime, w.CurrentAmplitude(now, p.Damping))
		}
	}

	wantRemoved := 0
	for _, w := range before {
		if w.CurrentAmplitude(now, p.Damping) < p.MinAmplitudeToRemove {
			wantRemoved++
		}
	}
	if removed != wantRemoved || f.Len() != len(before)-wantRemoved {
		t.Errorf("Cleanup() removed %d (len %d), want %d", removed, f.Len(), wantRemoved)
	}
	if wantRemoved == 0 {
		t.Fatal("fixture should age out at least one wave")
	}
}

func TestWaveLifetime(t *testing.T) {
	p := Params{
		Damping:              0.55,
		Amplitude:            80,
		MinAmplitudeToRemove: 0.3,
		Cooldown:             DefaultCooldown,
		MinDistance:          DefaultMinDistance,
	}
	lifetime := gomath.Log(p.MinAmplitudeToRemove/p.Amplitude) / gomath.Log(p.Damping)
	if lifetime < 9.3 || lifetime > 9.4 {
		t.Fatalf("lifetime = %v, want ~9.34s", lifetime)
	}

	f := NewField(p)
	f.AddWave(math.Vec2{X: 1, Y: 1}, 0, 10)

	f.Cleanup(10 + lifetime - 0.1)
	if f.Len() != 1 {
		t.Fatalf("wave removed %.2fs before its lifetime ended", 0.1)
	}
	f.Cleanup(10 + lifetime + 0.1)
	if f.Len() != 0 {
		t.Errorf("wave still present %.2fs after its lifetime ended", 0.1)
	}
}

func TestReset(t *testing.T) {
	f := NewField(DefaultParams())
	f.AddWave(math.Vec2{X: 1}, 0, 0)
	f.AddWave(math.Vec2{X: 100}, 1, 0)
	f.Reset()
	if f.Len() != 0 || len(f.lastEmission) != 0 || len(f.lastPosition) != 0 {
		t.Error("Reset() left state behind")
	}
}
