// Package config handles application configuration loading and management.
//
// A *Config is created once at startup and passed explicitly to whatever
// needs it; there is no package-level settings store.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Terminator TerminatorConfig `yaml:"terminator"`
	Ripple     RippleConfig     `yaml:"ripple"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DisplayConfig holds window and rendering settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerminatorConfig holds day/night overlay settings.
type TerminatorConfig struct {
	Enabled         bool          `yaml:"enabled"`
	MapImage        string        `yaml:"map_image"`        // Equirectangular world map, optional
	MapWidth        int           `yaml:"map_width"`        // Overlay resolution in pixels
	MapHeight       int           `yaml:"map_height"`       // Overlay resolution in pixels
	PixelStep       int           `yaml:"pixel_step"`       // Grid cell size, larger is coarser and cheaper
	OffsetX         float64       `yaml:"offset_x"`         // Meridian alignment of the map image, pixels
	BlurBand        float64       `yaml:"blur_band"`        // Soft edge half-width, degrees of altitude
	MaxAlpha        float64       `yaml:"max_alpha"`        // Opacity of full night
	NightColor      string        `yaml:"night_color"`      // #rrggbb
	ReferenceZone   string        `yaml:"reference_zone"`   // IANA zone for the ephemeris clock
	RefreshInterval time.Duration `yaml:"refresh_interval"` // How often to recompute the overlay
}

// RippleConfig holds wave field tuning.
type RippleConfig struct {
	Enabled              bool    `yaml:"enabled"`
	Damping              float64 `yaml:"damping"`
	Amplitude            float64 `yaml:"amplitude"`
	Frequency            float64 `yaml:"frequency"`
	Speed                float64 `yaml:"speed"`
	MinAmplitudeToRemove float64 `yaml:"min_amplitude_to_remove"`
	MinVisibleAmplitude  float64 `yaml:"min_visible_amplitude"`
	CooldownSeconds      float64 `yaml:"cooldown_seconds"`
	MinDistance          float64 `yaml:"min_distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      1280,
			Height:     640,
			Fullscreen: false,
			VSync:      true,
		},
		Terminator: TerminatorConfig{
			Enabled:         true,
			MapImage:        "",
			MapWidth:        1024,
			MapHeight:       512,
			PixelStep:       4,
			OffsetX:         0,
			BlurBand:        6,
			MaxAlpha:        0.42,
			NightColor:      "#050a1e",
			ReferenceZone:   "UTC",
			RefreshInterval: 5 * time.Second,
		},
		Ripple: RippleConfig{
			Enabled:              true,
			Damping:              0.55,
			Amplitude:            80,
			Frequency:            0.06,
			Speed:                900,
			MinAmplitudeToRemove: 0.3,
			MinVisibleAmplitude:  1.0,
			CooldownSeconds:      0.05,
			MinDistance:          15,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
