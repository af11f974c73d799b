package appicon

import "golang.org/x/image/draw"

// Option configures a Render or Generate call.
//
// Example:
//
//	// Reference output
//	img, err := appicon.Render()
//
//	// Same pixels, gradient painted on 8 goroutines
//	img, err := appicon.Render(appicon.WithWorkers(8))
type Option func(*options)

// options holds the render configuration.
type options struct {
	size        int
	supersample int
	workers     int
	filter      draw.Interpolator
	tongue      Tongue
}

// defaultOptions returns the reference configuration.
func defaultOptions() options {
	return options{
		size:        DefaultSize,
		supersample: DefaultSupersample,
		workers:     1,
		filter:      Lanczos3,
		tongue:      DefaultTongue,
	}
}

// WithSize sets the edge length of the square output image.
// The layout is defined for 1024 and is not rescaled for other sizes.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithSupersample sets the integer supersample factor.
func WithSupersample(f int) Option {
	return func(o *options) {
		o.supersample = f
	}
}

// WithWorkers sets the number of goroutines painting the gradient.
// Values below 2 keep the sequential reference behavior. The output does
// not depend on this setting.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFilter sets the downscale filter. Nil keeps Lanczos3.
func WithFilter(f draw.Interpolator) Option {
	return func(o *options) {
		if f != nil {
			o.filter = f
		}
	}
}

// WithTongue replaces the artwork layout.
func WithTongue(t Tongue) Option {
	return func(o *options) {
		o.tongue = t
	}
}
