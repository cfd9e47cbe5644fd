// Package terminator paints the night side of the Earth over an
// equirectangular world map.
package terminator

import "github.com/Faultbox/watchcore/pkg/math"

// Projection maps map pixels to geographic coordinates. The map is
// equirectangular: x spans 360 degrees of longitude, y spans 180 degrees of
// latitude with north at the top.
type Projection struct {
	Width  int
	Height int

	// OffsetX shifts the longitude origin by this many pixels, for map
	// images whose left edge is not the antimeridian.
	OffsetX float64
}

// LonLat returns the longitude in [-180, 180) and latitude in [-90, 90]
// of pixel position (x, y).
func (p Projection) LonLat(x, y float64) (lon, lat float64) {
	lon = math.WrapLongitude((x+p.OffsetX)/float64(p.Width)*360 - 180)
	lat = 90 - y/float64(p.Height)*180
	return lon, lat
}

// Pixel is the inverse of LonLat. X is wrapped into [0, Width).
func (p Projection) Pixel(lon, lat float64) (x, y float64) {
	x = (lon+180)/360*float64(p.Width) - p.OffsetX
	x = math.Wrap(x, float64(p.Width))
	y = (90 - lat) / 180 * float64(p.Height)
	return x, y
}
