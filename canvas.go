package appicon

import (
	"image"
	"image/color"
)

// Canvas is the supersampled RGBA raster the icon is drawn on.
//
// All drawing primitives are opaque overwrites: a later shape replaces the
// pixels of an earlier one (painter's algorithm). Coordinates outside the
// canvas are clipped silently.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. It is not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetPixel sets the color of a single pixel.
func (c *Canvas) SetPixel(x, y int, col RGBA8) {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return
	}
	c.img.SetRGBA(x, y, col.Premul())
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return the zero (transparent) color.
func (c *Canvas) GetPixel(x, y int) RGBA8 {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return RGBA8{}
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return RGBA8{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA8) {
	c.fillBox(0, 0, c.Width()-1, c.Height()-1, col)
}

// fillSpan fills the pixels x0..x1 (inclusive) of row y.
func (c *Canvas) fillSpan(y, x0, x1 int, col RGBA8) {
	if y < 0 || y >= c.Height() {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width()-1)
	if x0 > x1 {
		return
	}
	p := col.Premul()
	row := c.img.Pix[c.img.PixOffset(x0, y):c.img.PixOffset(x1, y)+4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = p.R
		row[i+1] = p.G
		row[i+2] = p.B
		row[i+3] = p.A
	}
}

// fillBox fills the inclusive integer box (x0, y0)-(x1, y1).
func (c *Canvas) fillBox(x0, y0, x1, y1 int, col RGBA8) {
	y0 = max(y0, 0)
	y1 = min(y1, c.Height()-1)
	for y := y0; y <= y1; y++ {
		c.fillSpan(y, x0, x1, col)
	}
}

// Opaque reports whether every pixel has alpha 255.
func (c *Canvas) Opaque() bool {
	return c.img.Opaque()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
