package appicon

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/draw"
)

func TestLanczos3(t *testing.T) {
	if got := lanczos3(0); got != 1 {
		t.Errorf("lanczos3(0) = %v, want 1", got)
	}
	for _, x := range []float64{1, 2} {
		if got := lanczos3(x); math.Abs(got) > 1e-12 {
			t.Errorf("lanczos3(%v) = %v, want 0", x, got)
		}
	}
	for _, x := range []float64{3, 3.5, 100} {
		if got := lanczos3(x); got != 0 {
			t.Errorf("lanczos3(%v) = %v, want 0 outside support", x, got)
		}
	}
	for _, x := range []float64{0.25, 1.5, 2.75} {
		if lanczos3(x) != lanczos3(-x) {
			t.Errorf("lanczos3 not symmetric at %v", x)
		}
	}
	if lanczos3(1.5) >= 0 {
		t.Error("lanczos3 should have a negative lobe in (1, 2)")
	}
}

func TestDownscale_Dimensions(t *testing.T) {
	src := NewCanvas(64, 64)
	src.Clear(TongueColor)

	for _, filter := range []draw.Interpolator{nil, Lanczos3, draw.CatmullRom} {
		dst := Downscale(src.Image(), 16, 16, filter)
		if dst.Rect != image.Rect(0, 0, 16, 16) {
			t.Errorf("Rect = %v, want 16x16", dst.Rect)
		}
	}
}

func TestDownscale_PreservesFlatColor(t *testing.T) {
	src := NewCanvas(64, 64)
	src.Clear(GradientOuter)

	dst := Downscale(src.Image(), 16, 16, Lanczos3)
	for y := range 16 {
		for x := range 16 {
			if got := dst.RGBAAt(x, y); got != GradientOuter.Premul() {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, GradientOuter.Premul())
			}
		}
	}
	if !dst.Opaque() {
		t.Error("downscaled opaque image is not opaque")
	}
}

func TestDownscale_AntiAliasesEdges(t *testing.T) {
	src := NewCanvas(64, 64)
	src.Clear(RGBA8{A: 255})
	src.FillRect(NewRect(Pt(0, 0), Pt(30, 63)), RGBA8{R: 255, G: 255, B: 255, A: 255})

	dst := Downscale(src.Image(), 16, 16, Lanczos3)

	// Columns far from the edge keep their color, the column straddling
	// x = 31/4 blends.
	if got := dst.RGBAAt(2, 8).R; got != 255 {
		t.Errorf("left column R = %d, want 255", got)
	}
	if got := dst.RGBAAt(13, 8).R; got != 0 {
		t.Errorf("right column R = %d, want 0", got)
	}
	if got := dst.RGBAAt(7, 8).R; got == 0 || got == 255 {
		t.Errorf("edge column R = %d, want an intermediate value", got)
	}
	if got := dst.RGBAAt(7, 8).A; got != 255 {
		t.Errorf("edge column A = %d, want 255", got)
	}
}
