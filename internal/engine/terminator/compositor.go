package terminator

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/watchcore/pkg/solar"
)

// Default colors.
const (
	DefaultNightColor = "#050a1e"
	DefaultOceanColor = "#1d4e7a"
	DefaultLineColor  = "#e8eef5"
)

// ParseColor parses a #rrggbb hex color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}

// Compositor renders a base map with the night overlay on top. It owns
// the output frame and reuses it between renders.
type Compositor struct {
	overlay *Overlay
	tint    colorful.Color
	base    *image.RGBA
	frame   *image.RGBA
}

// NewCompositor scales base to the overlay's projection size. A nil base
// uses a plain graticule map.
func NewCompositor(overlay *Overlay, base image.Image, tint colorful.Color) *Compositor {
	w, h := overlay.Projection.Width, overlay.Projection.Height
	bounds := image.Rect(0, 0, w, h)

	scaled := image.NewRGBA(bounds)
	if base == nil {
		base = Graticule(w, h, mustColor(DefaultOceanColor), mustColor(DefaultLineColor))
	}
	xdraw.CatmullRom.Scale(scaled, bounds, base, base.Bounds(), xdraw.Src, nil)

	return &Compositor{
		overlay: overlay,
		tint:    tint,
		base:    scaled,
		frame:   image.NewRGBA(bounds),
	}
}

// Overlay returns the overlay used for shading.
func (c *Compositor) Overlay() *Overlay {
	return c.overlay
}

// Base returns the scaled base map without any shading. Callers must not
// modify it.
func (c *Compositor) Base() *image.RGBA {
	return c.base
}

// Render draws the map and night overlay for p. The returned image is
// overwritten by the next Render.
func (c *Compositor) Render(p solar.Position) *image.RGBA {
	copy(c.frame.Pix, c.base.Pix)
	c.overlay.Draw(c.frame, p, c.tint)
	return c.frame
}

// Graticule draws a flat ocean with a line every 30 degrees of latitude
// and longitude, used when no map image is configured.
func Graticule(width, height int, ocean, line colorful.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	faint := toRGBA(ocean.BlendLab(line, 0.35))
	fill := toRGBA(ocean)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	for deg := 30; deg < 360; deg += 30 {
		x := deg * width / 360
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, faint)
		}
	}
	for deg := 30; deg < 180; deg += 30 {
		y := deg * height / 180
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, faint)
		}
	}
	return img
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
