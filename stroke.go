package appicon

import "math"

// StampStroke approximates a thick stroke along curve by filling a circle of
// the given radius at each of its steps+1 uniform samples.
//
// The stroke is continuous only while consecutive samples are closer than
// twice the radius. That depends on the curve geometry and steps, so it is
// checked on every call and reported through the package logger; the stroke
// is still drawn.
func StampStroke(c *Canvas, curve CubicBez, steps int, radius float64, col RGBA8) {
	pts := curve.Sample(steps)

	spacing := maxSpacing(pts)
	if spacing >= 2*radius {
		Logger().Warn("appicon: stamped stroke has gaps",
			"spacing", spacing, "radius", radius, "steps", steps)
	} else {
		Logger().Debug("appicon: stamped stroke",
			"samples", len(pts), "spacing", spacing, "radius", radius)
	}

	for _, p := range pts {
		c.FillCircle(p, radius, col)
	}
}

// maxSpacing returns the largest distance between consecutive points.
func maxSpacing(pts []Point) float64 {
	var spacing float64
	for i := 1; i < len(pts); i++ {
		spacing = math.Max(spacing, pts[i].Distance(pts[i-1]))
	}
	return spacing
}
