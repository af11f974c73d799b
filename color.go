package appicon

import (
	"fmt"
	"image/color"
)

// RGBA8 is a non-premultiplied color with 8-bit channels.
type RGBA8 struct {
	R, G, B, A uint8
}

// Palette used by the icon. All entries are fully opaque.
var (
	// GradientInner is the background color at the canvas center.
	GradientInner = RGBA8{R: 40, G: 28, B: 62, A: 255}
	// GradientOuter is the background color at and beyond the normalization radius.
	GradientOuter = RGBA8{R: 22, G: 14, B: 42, A: 255}

	TongueColor    = RGBA8{R: 225, G: 85, B: 105, A: 255}
	HighlightColor = RGBA8{R: 242, G: 128, B: 142, A: 255}
	GrooveColor    = RGBA8{R: 195, G: 65, B: 85, A: 255}
	MouthColor     = RGBA8{R: 230, G: 195, B: 205, A: 255}
)

// Color converts c to a color.NRGBA.
func (c RGBA8) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Premul returns c as a premultiplied color.RGBA, the layout of image.RGBA.
func (c RGBA8) Premul() color.RGBA {
	if c.A == 255 {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

// String returns the color as "rgba(r, g, b, a)".
func (c RGBA8) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// LerpRGBA8 interpolates each channel from a to b and truncates toward zero.
// t is clamped to [0, 1], so the result never leaves the [a, b] range.
func LerpRGBA8(a, b RGBA8, t float64) RGBA8 {
	t = clamp01(t)
	return RGBA8{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(clamp255(v))
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps x to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
