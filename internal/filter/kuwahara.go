package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// Quadrant identifies one of the four Kuwahara sub-windows around a pixel.
// The declaration order is also the tie-break order.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// quadrants lists every quadrant in tie-break order.
var quadrants = [...]Quadrant{NW, NE, SW, SE}

// String returns the compass name of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Bounds returns the inclusive rectangle covered by q for the pixel (x, y).
// Every quadrant is (radius+1) pixels square and contains (x, y).
func (q Quadrant) Bounds(x, y, radius int) (x1, y1, x2, y2 int) {
	switch q {
	case NW:
		return x - radius, y - radius, x, y
	case NE:
		return x, y - radius, x + radius, y
	case SW:
		return x - radius, y, x, y + radius
	default:
		return x, y, x + radius, y + radius
	}
}

// SelectQuadrant returns the quadrant around (x, y) with the smallest
// summed R+G+B variance, together with its mean color. Ties keep the
// earlier quadrant in NW, NE, SW, SE order.
func SelectQuadrant(sat *IntegralImage, x, y, radius int) (Quadrant, [3]float64) {
	best := NW
	var bestMean [3]float64
	minVariance := math.Inf(1)

	for _, q := range quadrants {
		mean, variance := sat.RegionStats(q.Bounds(x, y, radius))
		total := variance[0] + variance[1] + variance[2]
		if total < minVariance {
			minVariance = total
			best = q
			bestMean = mean
		}
	}

	return best, bestMean
}

// KuwaharaPixel computes the filtered value of pixel (x, y). Color comes
// from the selected quadrant's mean; alpha is copied from src.
func KuwaharaPixel(src *image.Grid, sat *IntegralImage, x, y, radius int) (r, g, b, a uint8) {
	_, mean := SelectQuadrant(sat, x, y, radius)
	_, _, _, a = src.At(x, y)
	return clampUint8(mean[0]), clampUint8(mean[1]), clampUint8(mean[2]), a
}

// kuwaharaRows filters rows [y0, y1) into out.
func kuwaharaRows(src *image.Grid, sat *IntegralImage, radius, y0, y1 int, out []byte) {
	stride := src.Stride()
	for y := y0; y < y1; y++ {
		dstRow := out[(y-y0)*stride : (y-y0+1)*stride]
		for x := range src.Width() {
			i := x * image.Channels
			dstRow[i], dstRow[i+1], dstRow[i+2], dstRow[i+3] = KuwaharaPixel(src, sat, x, y, radius)
		}
	}
}

// Kuwahara applies the Kuwahara filter to src. The summed-area table is
// built once and shared read-only by every worker.
func Kuwahara(src *image.Grid, radius, workers int, exec parallel.Executor) (*image.Grid, error) {
	if err := validate(src, radius, workers); err != nil {
		return nil, err
	}
	sat, err := BuildIntegralImage(src)
	if err != nil {
		return nil, err
	}
	return KuwaharaWithTable(src, sat, radius, workers, exec)
}

// KuwaharaWithTable is Kuwahara with a caller-built summed-area table,
// which must have been built from src.
func KuwaharaWithTable(src *image.Grid, sat *IntegralImage, radius, workers int, exec parallel.Executor) (*image.Grid, error) {
	if err := validate(src, radius, workers); err != nil {
		return nil, err
	}
	if sat == nil {
		return nil, errors.New("filter: nil summed-area table")
	}
	if sat.Width() != src.Width() || sat.Height() != src.Height() {
		return nil, fmt.Errorf("filter: %dx%d table does not match %dx%d source",
			sat.Width(), sat.Height(), src.Width(), src.Height())
	}

	dst, err := image.NewGrid(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	err = parallel.ForRows(exec, dst, workers, func(start, end int, out []byte) error {
		kuwaharaRows(src, sat, radius, start, end, out)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filter: kuwahara: %w", err)
	}
	return dst, nil
}
