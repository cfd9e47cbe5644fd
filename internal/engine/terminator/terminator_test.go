package terminator

import (
	"image"
	"image/color"
	gomath "math"
	"testing"
	"time"

	"github.com/Faultbox/watchcore/pkg/solar"
)

func TestProjectionLonLat(t *testing.T) {
	p := Projection{Width: 360, Height: 180}

	tests := []struct {
		name string
		x, y float64
		lon  float64
		lat  float64
	}{
		{"top left", 0, 0, -180, 90},
		{"centre", 180, 90, 0, 0},
		{"bottom quarter", 270, 135, 90, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lon, lat := p.LonLat(tt.x, tt.y)
			if gomath.Abs(lon-tt.lon) > 1e-9 || gomath.Abs(lat-tt.lat) > 1e-9 {
				t.Errorf("LonLat(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, lon, lat, tt.lon, tt.lat)
			}
		})
	}
}

func TestProjectionOffset(t *testing.T) {
	p := Projection{Width: 720, Height: 360, OffsetX: 20}
	lon, _ := p.LonLat(0, 0)
	if gomath.Abs(lon-(-170)) > 1e-9 {
		t.Errorf("offset lon = %v, want -170", lon)
	}

	x, y := p.Pixel(lon, 45)
	if gomath.Abs(x) > 1e-9 || gomath.Abs(y-90) > 1e-9 {
		t.Errorf("Pixel() = %v, %v; want 0, 90", x, y)
	}
}

func TestCellsCoverMap(t *testing.T) {
	o := NewOverlay(Projection{Width: 50, Height: 30}, 8, solar.DefaultShading())
	cells := o.Cells(solar.Compute(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))

	// ceil(50/8) * ceil(30/8)
	if len(cells) != 7*4 {
		t.Fatalf("len(cells) = %d, want 28", len(cells))
	}
	area := 0
	for _, c := range cells {
		area += c.Rect.Dx() * c.Rect.Dy()
		if c.Alpha < 0 || c.Alpha > solar.MaxNightAlpha {
			t.Errorf("cell %v alpha %v out of range", c.Rect, c.Alpha)
		}
	}
	if area != 50*30 {
		t.Errorf("cells cover %d pixels, want %d", area, 50*30)
	}
	last := cells[len(cells)-1].Rect
	if last != image.Rect(48, 24, 50, 30) {
		t.Errorf("last cell = %v, want clipped to map", last)
	}
}

func TestNewOverlayClampsStep(t *testing.T) {
	o := NewOverlay(Projection{Width: 4, Height: 4}, 0, solar.DefaultShading())
	if o.Step != 1 {
		t.Errorf("Step = %d, want 1", o.Step)
	}
}

func TestCellAlphaMatchesAltitude(t *testing.T) {
	proj := Projection{Width: 360, Height: 180}
	o := NewOverlay(proj, 10, solar.DefaultShading())
	pos := solar.Compute(time.Date(2024, time.September, 22, 15, 0, 0, 0, time.UTC))

	for _, c := range o.Cells(pos) {
		cx := float64(c.Rect.Min.X+c.Rect.Max.X) / 2
		cy := float64(c.Rect.Min.Y+c.Rect.Max.Y) / 2
		lon, lat := proj.LonLat(cx, cy)
		want := solar.NightAlpha(solar.AltitudeDegrees(lat, lon, pos), solar.DefaultBlurBand)
		if c.Alpha != want {
			t.Fatalf("cell %v alpha %v, want %v", c.Rect, c.Alpha, want)
		}
	}
}

func TestDrawShadesNightOnly(t *testing.T) {
	proj := Projection{Width: 360, Height: 180}
	o := NewOverlay(proj, 2, solar.DefaultShading())
	pos := solar.Compute(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))

	ocean := color.RGBA{R: 30, G: 80, B: 120, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, proj.Width, proj.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = ocean.R, ocean.G, ocean.B, ocean.A
	}

	tint, err := ParseColor(DefaultNightColor)
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	o.Draw(img, pos, tint)

	lat, lon := solar.SubsolarPoint(pos)
	dx, dy := proj.Pixel(lon, lat)
	if got := img.RGBAAt(int(dx), int(dy)); got != ocean {
		t.Errorf("subsolar pixel = %v, want untouched %v", got, ocean)
	}

	nx, ny := proj.Pixel(lon+180, -lat)
	night := img.RGBAAt(int(nx), int(ny))
	if night.B >= ocean.B || night.G >= ocean.G {
		t.Errorf("antisolar pixel = %v, want darker than %v", night, ocean)
	}
}

func TestNightFractionAtEquinox(t *testing.T) {
	o := NewOverlay(Projection{Width: 360, Height: 180}, 3, solar.DefaultShading())
	pos := solar.Compute(time.Date(2024, time.March, 20, 3, 6, 0, 0, time.UTC))

	f := o.NightFraction(pos)
	// Half the map minus the blur band on both terminator edges.
	if f < 0.35 || f > 0.5 {
		t.Errorf("NightFraction() = %v, want just under half", f)
	}
}

func TestParseColorInvalid(t *testing.T) {
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestCompositorRender(t *testing.T) {
	o := NewOverlay(Projection{Width: 120, Height: 60}, 4, solar.DefaultShading())
	tint, _ := ParseColor(DefaultNightColor)
	c := NewCompositor(o, nil, tint)

	pos := solar.Compute(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC))
	frame := c.Render(pos)
	if frame.Bounds() != image.Rect(0, 0, 120, 60) {
		t.Fatalf("frame bounds = %v", frame.Bounds())
	}

	// Rendering again must start from the clean base, not accumulate shade.
	before := append([]byte(nil), frame.Pix...)
	again := c.Render(pos)
	for i := range before {
		if before[i] != again.Pix[i] {
			t.Fatal("second render differs from the first")
		}
	}
}

func TestCompositorScalesBase(t *testing.T) {
	base := Graticule(40, 20, mustColor(DefaultOceanColor), mustColor(DefaultLineColor))
	o := NewOverlay(Projection{Width: 80, Height: 40}, 4, solar.DefaultShading())
	c := NewCompositor(o, base, mustColor(DefaultNightColor))
	if c.base.Bounds().Dx() != 80 || c.base.Bounds().Dy() != 40 {
		t.Errorf("base bounds = %v, want 80x40", c.base.Bounds())
	}
}
