package appicon

import "math"

// FillRect fills the inclusive pixel box r.
func (c *Canvas) FillRect(r Rect, col RGBA8) {
	c.fillBox(
		int(math.Ceil(r.Min.X)), int(math.Ceil(r.Min.Y)),
		int(math.Floor(r.Max.X)), int(math.Floor(r.Max.Y)),
		col,
	)
}

// FillEllipse fills the ellipse inscribed in the inclusive pixel box r.
// A pixel (x, y) is covered when ((x-cx)/a)² + ((y-cy)/b)² <= 1, where
// (cx, cy) is the box center and a, b are its half extents.
func (c *Canvas) FillEllipse(r Rect, col RGBA8) {
	a := r.Width() / 2
	b := r.Height() / 2
	if a <= 0 || b <= 0 {
		c.FillRect(r, col)
		return
	}
	center := r.Center()

	y0 := int(math.Ceil(r.Min.Y))
	y1 := int(math.Floor(r.Max.Y))
	for y := max(y0, 0); y <= min(y1, c.Height()-1); y++ {
		// Unnormalized units keep boundary pixels on integer boxes exact.
		dy := float64(y) - center.Y
		s := b*b - dy*dy
		if s < 0 {
			continue
		}
		dx := math.Sqrt(s) * a / b
		c.fillSpan(y, int(math.Ceil(center.X-dx)), int(math.Floor(center.X+dx)), col)
	}
}

// FillCircle fills a circle of the given radius around center.
func (c *Canvas) FillCircle(center Point, radius float64, col RGBA8) {
	d := Pt(radius, radius)
	c.FillEllipse(Rect{Min: center.Sub(d), Max: center.Add(d)}, col)
}

// FillRoundedRect fills the inclusive pixel box r with quarter-circle
// corners. The radius is clamped to half the shorter side, so a radius of
// half the width yields a pill.
func (c *Canvas) FillRoundedRect(r Rect, radius float64, col RGBA8) {
	radius = math.Min(radius, math.Min(r.Width(), r.Height())/2)
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}

	top := r.Min.Y + radius
	bottom := r.Max.Y - radius
	y0 := int(math.Ceil(r.Min.Y))
	y1 := int(math.Floor(r.Max.Y))
	for y := max(y0, 0); y <= min(y1, c.Height()-1); y++ {
		fy := float64(y)
		var dy float64
		switch {
		case fy < top:
			dy = top - fy
		case fy > bottom:
			dy = fy - bottom
		}
		s := radius*radius - dy*dy
		if s < 0 {
			continue
		}
		inset := radius - math.Sqrt(s)
		c.fillSpan(y, int(math.Ceil(r.Min.X+inset)), int(math.Floor(r.Max.X-inset)), col)
	}
}

// DrawLine draws l as a butt-capped stroke of the given width.
// A pixel is covered when its projection falls within the segment and its
// signed perpendicular distance lies in [-width/2, width/2).
func (c *Canvas) DrawLine(l Line, width float64, col RGBA8) {
	if width <= 0 {
		return
	}
	half := width / 2
	length := l.Length()
	if length == 0 {
		d := Pt(half, half)
		c.FillRect(Rect{Min: l.P0.Sub(d), Max: l.P0.Add(d)}, col)
		return
	}

	u := l.P1.Sub(l.P0).Mul(1 / length)
	n := Pt(-u.Y, u.X).Mul(half)
	bounds := NewRect(l.P0.Add(n), l.P1.Sub(n)).union(NewRect(l.P0.Sub(n), l.P1.Add(n)))

	x0 := max(int(math.Floor(bounds.Min.X)), 0)
	x1 := min(int(math.Ceil(bounds.Max.X)), c.Width()-1)
	y0 := max(int(math.Floor(bounds.Min.Y)), 0)
	y1 := min(int(math.Ceil(bounds.Max.Y)), c.Height()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v := Pt(float64(x), float64(y)).Sub(l.P0)
			along := v.Dot(u)
			if along < 0 || along > length {
				continue
			}
			perp := u.Cross(v)
			if perp >= -half && perp < half {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// union returns the smallest rectangle containing both r and other.
func (r Rect) union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}
