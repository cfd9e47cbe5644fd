// Package face holds the state of the world map watch face independent of
// any window or GPU: the day/night compositor, the solar clock, and the
// ripple field fed by pointer input.
package face

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/watchcore/internal/config"
	"github.com/Faultbox/watchcore/internal/engine/ripple"
	"github.com/Faultbox/watchcore/internal/engine/terminator"
	"github.com/Faultbox/watchcore/internal/logger"
	"github.com/Faultbox/watchcore/pkg/math"
	"github.com/Faultbox/watchcore/pkg/solar"
)

// Face is driven from a single loop and is not safe for concurrent use.
type Face struct {
	log *zap.Logger

	calc       *solar.Calculator
	compositor *terminator.Compositor
	shading    bool
	refresh    time.Duration
	lastRender time.Time
	frame      *image.RGBA

	field   *ripple.Field
	ripples bool
}

// New builds a face from cfg. base is the equirectangular map image; nil
// selects the generated graticule.
func New(cfg *config.Config, base image.Image) (*Face, error) {
	loc, err := time.LoadLocation(cfg.Terminator.ReferenceZone)
	if err != nil {
		return nil, fmt.Errorf("reference zone: %w", err)
	}
	tint, err := terminator.ParseColor(cfg.Terminator.NightColor)
	if err != nil {
		return nil, fmt.Errorf("night color: %w", err)
	}

	proj := terminator.Projection{
		Width:   cfg.Terminator.MapWidth,
		Height:  cfg.Terminator.MapHeight,
		OffsetX: cfg.Terminator.OffsetX,
	}
	overlay := terminator.NewOverlay(proj, cfg.Terminator.PixelStep, Shading(cfg.Terminator))

	return &Face{
		log:        logger.Named("face"),
		calc:       solar.NewCalculator(loc),
		compositor: terminator.NewCompositor(overlay, base, tint),
		shading:    cfg.Terminator.Enabled,
		refresh:    cfg.Terminator.RefreshInterval,
		field:      ripple.NewField(RippleParams(cfg.Ripple)),
		ripples:    cfg.Ripple.Enabled,
	}, nil
}

// RippleParams converts the ripple section of the config.
func RippleParams(c config.RippleConfig) ripple.Params {
	return ripple.Params{
		Damping:              c.Damping,
		Amplitude:            c.Amplitude,
		Frequency:            c.Frequency,
		Speed:                c.Speed,
		MinAmplitudeToRemove: c.MinAmplitudeToRemove,
		MinVisibleAmplitude:  c.MinVisibleAmplitude,
		Cooldown:             c.CooldownSeconds,
		MinDistance:          float32(c.MinDistance),
	}
}

// Shading converts the overlay opacity settings of the config.
func Shading(c config.TerminatorConfig) solar.Shading {
	return solar.Shading{
		MaxAlpha: c.MaxAlpha,
		BlurBand: c.BlurBand,
	}
}

// Field returns the ripple field.
func (f *Face) Field() *ripple.Field {
	return f.field
}

// Calculator returns the solar calculator.
func (f *Face) Calculator() *solar.Calculator {
	return f.calc
}

// Map returns the most recent map frame, or nil before the first Refresh.
func (f *Face) Map() *image.RGBA {
	return f.frame
}

// Refresh recomputes the map frame if the refresh interval has elapsed
// since the last render, or on the first call. It returns the frame and
// whether it changed. With shading disabled the plain base map is produced
// once and never refreshed.
func (f *Face) Refresh(now time.Time) (*image.RGBA, bool) {
	if f.frame != nil && (!f.shading || now.Sub(f.lastRender) < f.refresh) {
		return f.frame, false
	}
	return f.render(now), true
}

// ForceRefresh renders the map frame regardless of the interval.
func (f *Face) ForceRefresh(now time.Time) *image.RGBA {
	return f.render(now)
}

func (f *Face) render(now time.Time) *image.RGBA {
	if !f.shading {
		f.frame = f.compositor.Base()
		f.lastRender = now
		return f.frame
	}

	p := f.calc.Position(now)
	f.frame = f.compositor.Render(p)
	f.lastRender = now

	lat, lon := solar.SubsolarPoint(p)
	f.log.Debug("map refreshed",
		zap.Time("at", now),
		zap.Float64("subsolar_lat", lat),
		zap.Float64("subsolar_lon", lon),
		zap.Float64("night_fraction", f.compositor.Overlay().NightFraction(p)),
	)
	return f.frame
}

// PointerDown emits a wave where a pointer touched. now is the ripple
// clock in seconds.
func (f *Face) PointerDown(id ripple.PointerID, pos math.Vec2, now float64) bool {
	if !f.ripples {
		return false
	}
	return f.field.AddWave(pos, id, now)
}

// PointerMove emits a wave along a drag, subject to the field's throttle.
func (f *Face) PointerMove(id ripple.PointerID, pos math.Vec2, now float64) bool {
	return f.PointerDown(id, pos, now)
}

// PointerUp forgets the pointer's throttle state.
func (f *Face) PointerUp(id ripple.PointerID) {
	f.field.ReleasePointer(id)
}

// Frame drops faded waves and returns the uniform block for now.
func (f *Face) Frame(now float64) ripple.Uniforms {
	if removed := f.field.Cleanup(now); removed > 0 {
		f.log.Debug("waves faded", zap.Int("removed", removed), zap.Int("live", f.field.Len()))
	}
	return f.field.ShaderUniforms(now)
}
