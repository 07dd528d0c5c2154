// Package filter implements the pixel-neighborhood filters:
//   - Gaussian blur (separable, two horizontal passes around a transpose)
//   - Kuwahara edge-preserving smoothing (summed-area table backed)
//
// All filters:
//   - read the source grid only; it is shared by every worker
//   - partition output rows with package parallel
//   - produce byte-identical output for any worker count and executor
//
// Float accumulators are converted to bytes with math.Round (half away
// from zero) followed by a clamp to [0, 255].
package filter
