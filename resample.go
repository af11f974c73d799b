package appicon

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Lanczos3 is a windowed-sinc resampling kernel with a support of 3.
// draw.Kernel widens the support by the scale factor when downsampling, so
// every source pixel under a destination pixel contributes.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	t = math.Abs(t)
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// Downscale resamples src to width×height with filter. A nil filter
// selects Lanczos3. The destination is overwritten (draw.Src), not blended.
func Downscale(src image.Image, width, height int, filter draw.Interpolator) *image.RGBA {
	if filter == nil {
		filter = Lanczos3
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	filter.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
