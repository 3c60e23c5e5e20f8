// Package shade turns cell data into display colors: an hsluv-derived
// terrain palette mixed by wetness and steepness.
package shade

import (
	"image/color"

	hsluv "github.com/hsluv/hsluv-go"

	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

// Color is a straight-alpha RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// HSLuv builds a color from hsluv hue [0,360), saturation and lightness
// [0,100]. The hsluv space keeps perceived lightness steady across hues,
// which matters when terrain ramps sit next to each other on screen.
func HSLuv(h, s, l float64) Color {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return Color{float32(r), float32(g), float32(b), 1}
}

// Mix linearly interpolates from a to b by t in [0, 1].
func Mix(a, b Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		a.R + (b.R-a.R)*t,
		a.G + (b.G-a.G)*t,
		a.B + (b.B-a.B)*t,
		a.A + (b.A-a.A)*t,
	}
}

// RGBA converts to 8-bit stdlib color for image and terminal output.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 0xff),
		G: uint8(clamp01(c.G) * 0xff),
		B: uint8(clamp01(c.B) * 0xff),
		A: uint8(clamp01(c.A) * 0xff),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette is the terrain color ramp: flat ground, steep rock, and water,
// with the up-component threshold below which ground reads as steep.
type Palette struct {
	Flat      Color
	Steep     Color
	Water     Color
	Steepness float32
}

// DefaultPalette is the classic render: grass flats, grey rock, deep
// blue water.
func DefaultPalette() Palette {
	return Palette{
		Flat:      HSLuv(115, 65, 60),
		Steep:     HSLuv(60, 10, 42),
		Water:     HSLuv(250, 85, 40),
		Steepness: 0.8,
	}
}

// Terrain picks the ground color for a cell: steep rock when the surface
// normal leans past the steepness threshold, then mixed toward water by
// the normalized wetness in [0, 1).
func (pal Palette) Terrain(wetness float32, n vec.Vec3) Color {
	c := pal.Flat
	if n.Y < pal.Steepness {
		c = pal.Steep
	}
	return Mix(c, pal.Water, wetness)
}
