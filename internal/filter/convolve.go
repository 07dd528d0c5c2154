package filter

import (
	"math"

	"github.com/gogpu/imfilter/internal/image"
)

// ConvolveRows convolves rows [y0, y1) of src horizontally with kernel and
// writes them to out, which must hold (y1-y0)*src.Stride() bytes.
//
// Source columns outside the grid are clamped to the nearest edge pixel.
// All four channels, alpha included, are convolved the same way.
func ConvolveRows(src *image.Grid, kernel []float64, y0, y1 int, out []byte) {
	width := src.Width()
	radius := len(kernel) / 2
	stride := src.Stride()

	for y := y0; y < y1; y++ {
		row := src.Row(y)
		dstRow := out[(y-y0)*stride : (y-y0+1)*stride]

		for x := range width {
			var r, g, b, a float64

			for k := -radius; k <= radius; k++ {
				sx := min(max(x+k, 0), width-1)
				idx := sx * image.Channels
				weight := kernel[k+radius]

				r += float64(row[idx+0]) * weight
				g += float64(row[idx+1]) * weight
				b += float64(row[idx+2]) * weight
				a += float64(row[idx+3]) * weight
			}

			dstIdx := x * image.Channels
			dstRow[dstIdx+0] = clampUint8(r)
			dstRow[dstIdx+1] = clampUint8(g)
			dstRow[dstIdx+2] = clampUint8(b)
			dstRow[dstIdx+3] = clampUint8(a)
		}
	}
}

// clampUint8 rounds v half away from zero and clamps it to [0, 255].
func clampUint8(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
