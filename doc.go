// Package appicon renders the TongueTied app icon.
//
// # Overview
//
// The icon is a cartoon tongue on a dark-purple radial gradient. It is drawn
// procedurally, with no source artwork, so the output is fully reproducible:
// the same build always produces byte-identical files.
//
// # Quick Start
//
//	import "github.com/tonguetied/appicon"
//
//	img, err := appicon.Generate("AppIcon.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(img.Bounds())
//
// # Pipeline
//
// Render runs a single linear pipeline over one supersampled [Canvas]:
//   - allocate a Size×Supersample transparent canvas
//   - paint a block-quantized radial gradient ([BlockGradient])
//   - composite the tongue silhouette, highlight and groove ([Tongue.Composite])
//   - stamp circles along two cubic Bézier mouth curves ([StampStroke])
//   - downscale with a Lanczos-3 kernel ([Downscale])
//
// Generate additionally writes the result to disk. Writes are atomic: the
// image is encoded into a temporary file that is renamed into place only on
// success, so a failed write never leaves a partial file behind.
//
// # Coordinate System
//
// Layout constants are expressed in final-image units (0..1024) and scaled
// by the supersample factor before any drawing call:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel boxes are inclusive on both ends
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package appicon
