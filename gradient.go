package appicon

import (
	"math"

	"github.com/tonguetied/appicon/internal/parallel"
)

// gradientRadiusFactor scales the canvas width into the normalization radius.
const gradientRadiusFactor = 0.7

// BlockGradient is a block-quantized radial gradient.
//
// Instead of one color per pixel, the canvas is tiled into Block×Block
// squares and each square is filled with the color computed at its top-left
// corner. The banding this introduces is smoothed out by the final
// supersample downscale.
type BlockGradient struct {
	Center Point   // Center of the gradient
	Radius float64 // Distance at which Outer is reached
	Inner  RGBA8   // Color at the center
	Outer  RGBA8   // Color at and beyond Radius
	Block  int     // Tile edge in pixels
}

// NewBlockGradient creates the icon background gradient for a canvas of the
// given size. The center uses integer halving of the dimensions and the
// normalization radius is 0.7 × width.
func NewBlockGradient(width, height, block int) BlockGradient {
	return BlockGradient{
		Center: Pt(float64(width/2), float64(height/2)),
		Radius: gradientRadiusFactor * float64(width),
		Inner:  GradientInner,
		Outer:  GradientOuter,
		Block:  max(block, 1),
	}
}

// ColorAt returns the gradient color at (x, y).
// The normalized distance is clamped to [0, 1] before interpolation.
func (g BlockGradient) ColorAt(x, y float64) RGBA8 {
	if g.Radius <= 0 {
		return g.Outer
	}
	dx := x - g.Center.X
	dy := y - g.Center.Y
	d := math.Sqrt(dx*dx+dy*dy) / g.Radius
	return LerpRGBA8(g.Inner, g.Outer, math.Min(d, 1))
}

// Paint fills the whole canvas.
func (g BlockGradient) Paint(c *Canvas) {
	g.PaintRows(c, 0, c.Height())
}

// PaintRows fills the canvas rows [y0, y1). Each row takes its colors from
// the top-left corners of the blocks it belongs to, so painting disjoint row
// ranges in any order gives the same result as a single Paint.
func (g BlockGradient) PaintRows(c *Canvas, y0, y1 int) {
	b := max(g.Block, 1)
	y0 = max(y0, 0)
	y1 = min(y1, c.Height())

	for by := y0 - y0%b; by < y1; by += b {
		top := max(by, y0)
		bottom := min(by+b, y1) - 1
		for bx := 0; bx < c.Width(); bx += b {
			c.fillBox(bx, top, bx+b-1, bottom, g.ColorAt(float64(bx), float64(by)))
		}
	}
}

// PaintParallel fills the canvas using pool, one job per row band.
// Bands are aligned to block rows and never overlap.
func (g BlockGradient) PaintParallel(c *Canvas, pool *parallel.WorkerPool) {
	bands := parallel.SplitRows(c.Height(), max(g.Block, 1), pool.Workers()*4)
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			g.PaintRows(c, band.Y0, band.Y1)
		}
	}
	pool.ExecuteAll(work)
}
