package filter

import (
	"fmt"

	"github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// colorChannels is the number of channels tracked by IntegralImage.
// Alpha is excluded.
const colorChannels = 3

// IntegralImage is a summed-area table of the R, G and B channels and of
// their squares. It answers mean and variance queries over any
// axis-aligned rectangle in constant time.
//
// Both tables are (width+1) x (height+1) with a zero first row and column,
// so entry (x, y) holds the sum over source pixels [0, x) x [0, y).
// An IntegralImage is immutable after construction and safe for
// concurrent reads.
type IntegralImage struct {
	sum    []float64
	sumSq  []float64
	width  int
	height int
}

// NewIntegralImage builds the summed-area tables for src in one pass.
func NewIntegralImage(src *image.Grid) *IntegralImage {
	w, h := src.Width(), src.Height()
	size := (w + 1) * (h + 1) * colorChannels
	ii := &IntegralImage{
		sum:    make([]float64, size),
		sumSq:  make([]float64, size),
		width:  w,
		height: h,
	}

	for y := 1; y <= h; y++ {
		row := src.Row(y - 1)
		for x := 1; x <= w; x++ {
			px := row[(x-1)*image.Channels:]
			for ch := range colorChannels {
				v := float64(px[ch])
				idx := ii.index(x, y, ch)
				up := ii.index(x, y-1, ch)
				left := ii.index(x-1, y, ch)
				diag := ii.index(x-1, y-1, ch)

				ii.sum[idx] = v + ii.sum[up] + ii.sum[left] - ii.sum[diag]
				ii.sumSq[idx] = v*v + ii.sumSq[up] + ii.sumSq[left] - ii.sumSq[diag]
			}
		}
	}

	return ii
}

// BuildIntegralImage is NewIntegralImage run under the worker panic
// boundary, so a failure surfaces as parallel.ErrWorkerPanic.
func BuildIntegralImage(src *image.Grid) (*IntegralImage, error) {
	var ii *IntegralImage
	err := parallel.Guard("summed-area table", func() error {
		ii = NewIntegralImage(src)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return ii, nil
}

// Width returns the width of the source grid.
func (ii *IntegralImage) Width() int {
	return ii.width
}

// Height returns the height of the source grid.
func (ii *IntegralImage) Height() int {
	return ii.height
}

// index returns the table offset of entry (x, y) for channel ch.
func (ii *IntegralImage) index(x, y, ch int) int {
	return (y*(ii.width+1)+x)*colorChannels + ch
}

// RegionStats returns the per-channel mean and population variance of the
// source pixels in the inclusive rectangle (x1, y1)-(x2, y2).
//
// The rectangle is clamped to the grid first. If nothing remains, mean
// and variance are zero. Variance is floored at zero to absorb rounding.
func (ii *IntegralImage) RegionStats(x1, y1, x2, y2 int) (mean, variance [3]float64) {
	x1 = max(0, x1)
	y1 = max(0, y1)
	x2 = min(ii.width-1, x2)
	y2 = min(ii.height-1, y2)

	if x2 < x1 || y2 < y1 {
		return mean, variance
	}

	area := float64((x2 - x1 + 1) * (y2 - y1 + 1))

	// Table coordinates are one past the pixel coordinates.
	for ch := range colorChannels {
		br := ii.index(x2+1, y2+1, ch)
		bl := ii.index(x1, y2+1, ch)
		tr := ii.index(x2+1, y1, ch)
		tl := ii.index(x1, y1, ch)

		sum := ii.sum[br] - ii.sum[bl] - ii.sum[tr] + ii.sum[tl]
		sumSq := ii.sumSq[br] - ii.sumSq[bl] - ii.sumSq[tr] + ii.sumSq[tl]

		mean[ch] = sum / area
		variance[ch] = max(sumSq/area-mean[ch]*mean[ch], 0)
	}

	return mean, variance
}
