// Package imfilter applies neighborhood filters to RGBA8 rasters in
// parallel.
//
// # Overview
//
// Two filters are provided:
//   - GaussianBlur: separable Gaussian blur with clamp-to-edge borders
//   - Kuwahara: edge-preserving smoothing that picks, per pixel, the least
//     varied of four overlapping quadrants using a summed-area table
//
// # Quick Start
//
//	import "github.com/gogpu/imfilter"
//
//	src, err := imfilter.Load("photo.png")
//	if err != nil {
//		return err
//	}
//	dst, err := imfilter.Kuwahara(src, 4, 8)
//	if err != nil {
//		return err
//	}
//	return dst.Save("painted.png")
//
// # Determinism
//
// Output rows are split into contiguous ranges, one per worker. Workers
// read a shared immutable source and each writes only its own range of
// the destination, once. The result is byte-identical for every worker
// count and for both schedulers (see WithScheduler).
//
// # Errors
//
// Invalid arguments are rejected before any work starts. A worker that
// panics aborts the whole call: the caller gets one error and no image.
package imfilter

// Version is the current version of the library.
const Version = "0.1.0"
