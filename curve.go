package appicon

import "math"

// Curve types used by the icon layout.
// Based on kurbo patterns, trimmed to what the icon draws.

// Rect represents an axis-aligned pixel box.
// Min is the top-left corner, Max the bottom-right corner; both are inclusive.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Scale returns the rectangle with both corners multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Scale returns the segment with both endpoints multiplied by s.
func (l Line) Scale(s float64) Line {
	return Line{P0: l.P0.Mul(s), P1: l.P1.Mul(s)}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
// Eval(0) is exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Scale returns the curve with every control point multiplied by s.
func (c CubicBez) Scale(s float64) CubicBez {
	return CubicBez{P0: c.P0.Mul(s), P1: c.P1.Mul(s), P2: c.P2.Mul(s), P3: c.P3.Mul(s)}
}

// Sample evaluates the curve at the steps+1 uniform parameters
// t = 0, 1/steps, ..., 1. A non-positive steps yields just the endpoints.
func (c CubicBez) Sample(steps int) []Point {
	if steps < 1 {
		return []Point{c.P0, c.P3}
	}
	pts := make([]Point, steps+1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / float64(steps))
	}
	return pts
}

// MaxSampleSpacing returns the largest distance between consecutive points
// of c.Sample(steps).
func (c CubicBez) MaxSampleSpacing(steps int) float64 {
	return maxSpacing(c.Sample(steps))
}
