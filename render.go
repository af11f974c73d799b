package appicon

import (
	"errors"
	"fmt"
	"image"
	"time"

	intImage "github.com/tonguetied/appicon/internal/image"
	"github.com/tonguetied/appicon/internal/parallel"
)

const (
	// DefaultSize is the edge length of the output icon in pixels.
	DefaultSize = 1024

	// DefaultSupersample is the factor the canvas is oversized by.
	DefaultSupersample = 4

	// maxCanvasSize bounds the supersampled canvas edge.
	maxCanvasSize = 1 << 15
)

// Render errors.
var (
	// ErrInvalidSize is returned when the output size is not positive.
	ErrInvalidSize = errors.New("appicon: invalid size")

	// ErrInvalidSupersample is returned when the supersample factor is not positive.
	ErrInvalidSupersample = errors.New("appicon: invalid supersample factor")

	// ErrCanvasTooLarge is returned when size × supersample exceeds the canvas limit.
	ErrCanvasTooLarge = errors.New("appicon: canvas too large")
)

// Render draws the icon and returns the downscaled, fully opaque image.
func Render(opts ...Option) (*image.RGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, o.size)
	}
	if o.supersample <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSupersample, o.supersample)
	}
	if o.size > maxCanvasSize/o.supersample {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d", ErrCanvasTooLarge, o.size, o.supersample, maxCanvasSize)
	}

	big := o.size * o.supersample
	log := Logger()
	start := time.Now()

	canvas := NewCanvas(big, big)
	log.Debug("appicon: canvas allocated", "width", big, "height", big, "supersample", o.supersample)

	grad := NewBlockGradient(big, big, o.supersample)
	if o.workers > 1 {
		pool := parallel.NewWorkerPool(o.workers)
		grad.PaintParallel(canvas, pool)
		pool.Close()
	} else {
		grad.Paint(canvas)
	}
	log.Debug("appicon: gradient painted", "workers", max(o.workers, 1), "elapsed", time.Since(start))

	o.tongue.Scale(float64(o.supersample)).Draw(canvas)
	log.Debug("appicon: artwork drawn", "elapsed", time.Since(start))

	img := Downscale(canvas.Image(), o.size, o.size, o.filter)
	log.Debug("appicon: downscaled", "width", o.size, "height", o.size, "elapsed", time.Since(start))

	return img, nil
}

// Generate renders the icon and writes it to path. The encoding follows the
// extension: .bmp, .tif or .tiff, and PNG for anything else.
//
// The write is atomic. On failure no file is left at path and the
// underlying error is wrapped, so errors.Is(err, fs.ErrNotExist) and
// similar checks work.
func Generate(path string, opts ...Option) (*image.RGBA, error) {
	img, err := Render(opts...)
	if err != nil {
		return nil, err
	}
	if err := intImage.Save(path, img); err != nil {
		return nil, fmt.Errorf("appicon: save icon: %w", err)
	}
	Logger().Info("appicon: icon written", "path", path,
		"width", img.Rect.Dx(), "height", img.Rect.Dy())
	return img, nil
}
