package breakout

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a sprite tint with red, green, blue and alpha components in [0, 1].
// Particles use alpha for fading; every other entity is opaque.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts the tint to a non-premultiplied standard color,
// clamping out-of-range components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R*255, 0, 255)),
		G: uint8(clamp(c.G*255, 0, 255)),
		B: uint8(clamp(c.B*255, 0, 255)),
		A: uint8(clamp(c.A*255, 0, 255)),
	}
}

// IsWhite reports whether the tint leaves a sprite unchanged.
func (c Color) IsWhite() bool {
	return c.R >= 1 && c.G >= 1 && c.B >= 1 && c.A >= 1
}

// Approx returns true if two colors are approximately equal within epsilon.
func (c Color) Approx(o Color, epsilon float32) bool {
	return math32.Abs(c.R-o.R) < epsilon &&
		math32.Abs(c.G-o.G) < epsilon &&
		math32.Abs(c.B-o.B) < epsilon &&
		math32.Abs(c.A-o.A) < epsilon
}

// Common tints.
var (
	White = RGB(1, 1, 1)
	Black = RGB(0, 0, 0)
	Green = RGB(0, 1, 0)
	// Yellow is used by the win screen prompt.
	Yellow = RGB(1, 1, 0)
)
