package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/watchcore/internal/engine/terminator"
	"github.com/Faultbox/watchcore/pkg/solar"
)

const labelPadding = 4

// drawLabel writes text in the bottom-left corner of img on a dark
// backing box.
func drawLabel(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 232, G: 238, B: 245, A: 255}),
		Face: face,
	}

	b := img.Bounds()
	textWidth := d.MeasureString(text).Ceil()
	box := image.Rect(
		b.Min.X,
		b.Max.Y-face.Height-2*labelPadding,
		b.Min.X+textWidth+2*labelPadding,
		b.Max.Y,
	).Intersect(b)
	draw.Draw(img, box, image.NewUniform(color.NRGBA{A: 160}), image.Point{}, draw.Over)

	d.Dot = fixed.P(b.Min.X+labelPadding, b.Max.Y-labelPadding-face.Descent)
	d.DrawString(text)
}

const markerRadius = 2

var sunColor = color.RGBA{R: 255, G: 204, B: 0, A: 255}

// drawSunMarker fills a small square on the subsolar point and returns its
// centre in image coordinates.
func drawSunMarker(img *image.RGBA, proj terminator.Projection, p solar.Position) image.Point {
	lat, lon := solar.SubsolarPoint(p)
	x, y := proj.Pixel(lon, lat)

	b := img.Bounds()
	c := image.Pt(b.Min.X+int(x), b.Min.Y+int(y))
	r := image.Rect(c.X-markerRadius, c.Y-markerRadius, c.X+markerRadius+1, c.Y+markerRadius+1)
	draw.Draw(img, r.Intersect(b), image.NewUniform(sunColor), image.Point{}, draw.Src)
	return c
}
