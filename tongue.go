package appicon

// Tongue is the icon artwork layout in final-image units (0..1024).
type Tongue struct {
	Body      Rect    // Tongue body bounding box
	TipRadius float64 // Vertical radius of the ellipse rounding the bottom edge

	Highlight       Rect    // Glossy highlight inside the body
	HighlightRadius float64 // Highlight corner radius

	Groove      Line    // Center crease
	GrooveWidth float64 // Crease stroke width

	Mouth       [2]CubicBez // Left and right mouth corners
	MouthRadius float64     // Stamp radius of the mouth strokes
	MouthSteps  int         // Samples per mouth curve
}

// DefaultTongue is the TongueTied icon layout.
var DefaultTongue = Tongue{
	Body:      NewRect(Pt(330, 340), Pt(694, 740)),
	TipRadius: 182,

	Highlight:       NewRect(Pt(405, 400), Pt(619, 760)),
	HighlightRadius: 107,

	Groove:      NewLine(Pt(512, 400), Pt(512, 770)),
	GrooveWidth: 5,

	Mouth: [2]CubicBez{
		NewCubicBez(Pt(195, 235), Pt(215, 290), Pt(270, 340), Pt(330, 340)),
		NewCubicBez(Pt(694, 340), Pt(754, 340), Pt(809, 290), Pt(829, 235)),
	},
	MouthRadius: 11,
	MouthSteps:  400,
}

// Scale returns the layout with every coordinate, radius and width
// multiplied by f. MouthSteps is unchanged.
func (t Tongue) Scale(f float64) Tongue {
	return Tongue{
		Body:            t.Body.Scale(f),
		TipRadius:       t.TipRadius * f,
		Highlight:       t.Highlight.Scale(f),
		HighlightRadius: t.HighlightRadius * f,
		Groove:          t.Groove.Scale(f),
		GrooveWidth:     t.GrooveWidth * f,
		Mouth:           [2]CubicBez{t.Mouth[0].Scale(f), t.Mouth[1].Scale(f)},
		MouthRadius:     t.MouthRadius * f,
		MouthSteps:      t.MouthSteps,
	}
}

// Tip returns the bounding box of the ellipse centered on the bottom edge of
// the body.
func (t Tongue) Tip() Rect {
	return Rect{
		Min: Pt(t.Body.Min.X, t.Body.Max.Y-t.TipRadius),
		Max: Pt(t.Body.Max.X, t.Body.Max.Y+t.TipRadius),
	}
}

// Composite draws the silhouette back to front: body, rounded tip,
// highlight, groove.
func (t Tongue) Composite(c *Canvas) {
	c.FillRect(t.Body, TongueColor)
	c.FillEllipse(t.Tip(), TongueColor)
	c.FillRoundedRect(t.Highlight, t.HighlightRadius, HighlightColor)
	c.DrawLine(t.Groove, t.GrooveWidth, GrooveColor)
}

// StrokeMouth stamps both mouth curves.
func (t Tongue) StrokeMouth(c *Canvas) {
	for _, m := range t.Mouth {
		StampStroke(c, m, t.MouthSteps, t.MouthRadius, MouthColor)
	}
}

// Draw runs Composite then StrokeMouth.
func (t Tongue) Draw(c *Canvas) {
	t.Composite(c)
	t.StrokeMouth(c)
}
