package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/watchcore/internal/config"
	"github.com/Faultbox/watchcore/internal/engine/debug"
	"github.com/Faultbox/watchcore/internal/engine/terminator"
	"github.com/Faultbox/watchcore/internal/engine/texture"
	"github.com/Faultbox/watchcore/internal/logger"
	"github.com/Faultbox/watchcore/pkg/solar"
)

// timeFlags registers the -time and -zone flags shared by every command.
func timeFlags(fs *flag.FlagSet) (at, zone *string) {
	at = fs.String("time", "", "Instant in RFC 3339 (default now)")
	zone = fs.String("zone", config.Default().Terminator.ReferenceZone, "Reference time zone for the ephemeris")
	return at, zone
}

// resolveTime parses value, or returns now when it is empty.
func resolveTime(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse -time: %w", err)
	}
	return t, nil
}

func position(at, zone string) (time.Time, solar.Position, error) {
	t, err := resolveTime(at, time.Now())
	if err != nil {
		return time.Time{}, solar.Position{}, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, solar.Position{}, fmt.Errorf("load -zone: %w", err)
	}
	return t, solar.NewCalculator(loc).Position(t), nil
}

func cmdSun(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sun", flag.ContinueOnError)
	fs.SetOutput(out)
	at, zone := timeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, p, err := position(*at, *zone)
	if err != nil {
		return err
	}
	lat, lon := solar.SubsolarPoint(p)

	fmt.Fprintf(out, "Time:            %s\n", t.Format(time.RFC3339))
	fmt.Fprintf(out, "Zone:            %s\n", *zone)
	fmt.Fprintf(out, "Days since 2000: %.5f\n", p.DaysSinceEpoch)
	fmt.Fprintf(out, "Right ascension: %.4f h\n", p.RightAscensionHours)
	fmt.Fprintf(out, "Declination:     %.4f°\n", p.DeclinationDegrees)
	fmt.Fprintf(out, "Ecliptic lon:    %.4f°\n", p.EclipticLongitudeDegrees)
	fmt.Fprintf(out, "Obliquity:       %.4f°\n", p.ObliquityDegrees)
	fmt.Fprintf(out, "GMST0:           %.4f h\n", p.GreenwichSiderealTimeHours)
	fmt.Fprintf(out, "Subsolar point:  %.3f°, %.3f°\n", lat, lon)
	return nil
}

func cmdAltitude(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("altitude", flag.ContinueOnError)
	fs.SetOutput(out)
	at, zone := timeFlags(fs)
	lat := fs.Float64("lat", 0, "Latitude in degrees, north positive")
	lon := fs.Float64("lon", 0, "Longitude in degrees, east positive")
	blur := fs.Float64("blur", solar.DefaultBlurBand, "Blur band in degrees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lat < -90 || *lat > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", *lat)
	}

	_, p, err := position(*at, *zone)
	if err != nil {
		return err
	}
	alt := solar.AltitudeDegrees(*lat, *lon, p)

	fmt.Fprintf(out, "Altitude:    %.3f°\n", alt)
	fmt.Fprintf(out, "Azimuth:     %.3f°\n", solar.AzimuthDegrees(*lat, *lon, p))
	fmt.Fprintf(out, "Hour angle:  %.3f°\n", p.HourAngleDegrees(*lon))
	fmt.Fprintf(out, "Night alpha: %.3f\n", solar.NightAlpha(alt, *blur))

	dir := solar.SunDirection(*lat, *lon, p)
	fmt.Fprintf(out, "Sun vector:  %.4f %.4f %.4f\n", dir.X, dir.Y, dir.Z)
	return nil
}

func cmdRender(args []string, out io.Writer) error {
	defaults := config.Default().Terminator

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(out)
	at, zone := timeFlags(fs)
	width := fs.Int("width", defaults.MapWidth, "Output width in pixels")
	height := fs.Int("height", defaults.MapHeight, "Output height in pixels")
	step := fs.Int("step", defaults.PixelStep, "Grid cell size in pixels")
	blur := fs.Float64("blur", defaults.BlurBand, "Blur band in degrees")
	alpha := fs.Float64("alpha", defaults.MaxAlpha, "Opacity of full night")
	offset := fs.Float64("offset", defaults.OffsetX, "Meridian offset of the map image in pixels")
	mapPath := fs.String("map", defaults.MapImage, "Equirectangular base map (default graticule)")
	nightColor := fs.String("color", defaults.NightColor, "Night tint as #rrggbb")
	output := fs.String("o", "nightmap.png", "Output PNG path")
	label := fs.Bool("label", true, "Stamp the time in the corner")
	marker := fs.Bool("sun", true, "Mark the subsolar point")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width < 2 || *height < 1 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}

	t, p, err := position(*at, *zone)
	if err != nil {
		return err
	}
	tint, err := terminator.ParseColor(*nightColor)
	if err != nil {
		return err
	}

	var base image.Image
	if *mapPath != "" {
		if base, err = texture.LoadImage(*mapPath); err != nil {
			return err
		}
	}

	start := time.Now()
	proj := terminator.Projection{Width: *width, Height: *height, OffsetX: *offset}
	overlay := terminator.NewOverlay(
		proj,
		*step,
		solar.Shading{MaxAlpha: *alpha, BlurBand: *blur},
	)
	frame := terminator.NewCompositor(overlay, base, tint).Render(p)

	img := image.NewRGBA(frame.Bounds())
	draw.Draw(img, img.Bounds(), frame, image.Point{}, draw.Src)
	if *marker {
		drawSunMarker(img, proj, p)
	}
	if *label {
		drawLabel(img, t.UTC().Format("2006-01-02 15:04 UTC"))
	}

	if err := debug.WritePNG(*output, img); err != nil {
		return err
	}

	logger.Info("rendered",
		zap.String("path", *output),
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("night_fraction", overlay.NightFraction(p)),
	)
	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", *output, *width, *height)
	return nil
}
