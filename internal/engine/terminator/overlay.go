package terminator

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/watchcore/pkg/solar"
)

// DefaultStep is the default grid cell size in pixels.
const DefaultStep = 4

// Cell is one sampled grid cell and its night opacity.
type Cell struct {
	Rect  image.Rectangle
	Alpha float64
}

// Overlay samples solar altitude on a coarse pixel grid. It holds no
// per-frame state and can be shared by any single rendering pass.
type Overlay struct {
	Projection Projection
	Step       int
	Shading    solar.Shading
}

// NewOverlay creates an overlay. Steps below 1 are raised to 1.
func NewOverlay(proj Projection, step int, shading solar.Shading) *Overlay {
	if step < 1 {
		step = 1
	}
	return &Overlay{
		Projection: proj,
		Step:       step,
		Shading:    shading,
	}
}

// Each calls fn for every grid cell, row by row. The altitude is sampled
// at the cell centre; cells on the right and bottom edges are clipped to
// the map.
func (o *Overlay) Each(p solar.Position, fn func(Cell)) {
	w, h := o.Projection.Width, o.Projection.Height
	for y := 0; y < h; y += o.Step {
		y1 := min(y+o.Step, h)
		for x := 0; x < w; x += o.Step {
			x1 := min(x+o.Step, w)
			lon, lat := o.Projection.LonLat(float64(x+x1)/2, float64(y+y1)/2)
			alt := solar.AltitudeDegrees(lat, lon, p)
			fn(Cell{
				Rect:  image.Rect(x, y, x1, y1),
				Alpha: o.Shading.Alpha(alt),
			})
		}
	}
}

// Cells returns every grid cell.
func (o *Overlay) Cells(p solar.Position) []Cell {
	cols := (o.Projection.Width + o.Step - 1) / o.Step
	rows := (o.Projection.Height + o.Step - 1) / o.Step
	cells := make([]Cell, 0, cols*rows)
	o.Each(p, func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}

// Draw composites the night tint over dst at each cell's opacity. Cells in
// full daylight are skipped.
func (o *Overlay) Draw(dst *image.RGBA, p solar.Position, tint colorful.Color) {
	r, g, b := tint.Clamped().RGB255()
	o.Each(p, func(c Cell) {
		if c.Alpha <= 0 {
			return
		}
		src := image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: uint8(c.Alpha*255 + 0.5)})
		draw.Draw(dst, c.Rect.Add(dst.Rect.Min), src, image.Point{}, draw.Over)
	})
}

// NightFraction returns the share of the map area that is in full night,
// weighted by pixel area rather than by true surface area.
func (o *Overlay) NightFraction(p solar.Position) float64 {
	total := o.Projection.Width * o.Projection.Height
	if total == 0 {
		return 0
	}
	night := 0
	o.Each(p, func(c Cell) {
		if c.Alpha >= o.Shading.MaxAlpha {
			night += c.Rect.Dx() * c.Rect.Dy()
		}
	})
	return float64(night) / float64(total)
}
