package appicon

import (
	"testing"

	"github.com/tonguetied/appicon/internal/parallel"
)

func BenchmarkGradientPaint(b *testing.B) {
	c := NewCanvas(DefaultSize*DefaultSupersample, DefaultSize*DefaultSupersample)
	g := NewBlockGradient(c.Width(), c.Height(), DefaultSupersample)
	for b.Loop() {
		g.Paint(c)
	}
}

func BenchmarkGradientPaintParallel(b *testing.B) {
	c := NewCanvas(DefaultSize*DefaultSupersample, DefaultSize*DefaultSupersample)
	g := NewBlockGradient(c.Width(), c.Height(), DefaultSupersample)
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()
	for b.Loop() {
		g.PaintParallel(c, pool)
	}
}

func BenchmarkStrokeMouth(b *testing.B) {
	c := NewCanvas(DefaultSize*DefaultSupersample, DefaultSize*DefaultSupersample)
	tongue := DefaultTongue.Scale(DefaultSupersample)
	for b.Loop() {
		tongue.StrokeMouth(c)
	}
}

func BenchmarkRender(b *testing.B) {
	for b.Loop() {
		if _, err := Render(); err != nil {
			b.Fatal(err)
		}
	}
}
