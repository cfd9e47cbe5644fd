package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Validate checks that settings are within usable ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}

	t := c.Terminator
	if t.MapWidth <= 0 || t.MapHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminator map size %dx%d must be positive", t.MapWidth, t.MapHeight))
	}
	if t.PixelStep < 1 {
		errs = append(errs, fmt.Errorf("terminator pixel_step %d must be at least 1", t.PixelStep))
	}
	if t.MaxAlpha < 0 || t.MaxAlpha > 1 {
		errs = append(errs, fmt.Errorf("terminator max_alpha %v must be in [0, 1]", t.MaxAlpha))
	}
	if t.BlurBand < 0 {
		errs = append(errs, fmt.Errorf("terminator blur_band %v must not be negative", t.BlurBand))
	}
	if _, err := colorful.Hex(t.NightColor); err != nil {
		errs = append(errs, fmt.Errorf("terminator night_color %q: %w", t.NightColor, err))
	}
	if _, err := time.LoadLocation(t.ReferenceZone); err != nil {
		errs = append(errs, fmt.Errorf("terminator reference_zone: %w", err))
	}
	if t.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("terminator refresh_interval %v must be positive", t.RefreshInterval))
	}

	r := c.Ripple
	if r.Damping <= 0 || r.Damping >= 1 {
		errs = append(errs, fmt.Errorf("ripple damping %v must be in (0, 1)", r.Damping))
	}
	if r.Amplitude <= 0 {
		errs = append(errs, fmt.Errorf("ripple amplitude %v must be positive", r.Amplitude))
	}
	if r.MinAmplitudeToRemove < 0 || r.MinAmplitudeToRemove >= r.Amplitude {
		errs = append(errs, fmt.Errorf("ripple min_amplitude_to_remove %v must be in [0, amplitude)", r.MinAmplitudeToRemove))
	}
	if r.CooldownSeconds < 0 || r.MinDistance < 0 {
		errs = append(errs, errors.New("ripple cooldown_seconds and min_distance must not be negative"))
	}

	return errors.Join(errs...)
}
