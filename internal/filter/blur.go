package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// Argument errors.
var (
	// ErrInvalidRadius is returned for a negative filter radius.
	ErrInvalidRadius = errors.New("filter: radius must be non-negative")

	// ErrNilSource is returned when the source grid is nil.
	ErrNilSource = errors.New("filter: nil source grid")
)

// GaussianBlur blurs src with a separable Gaussian of the given radius.
//
// The horizontal pass runs over row partitions of src, the result is
// transposed, the same horizontal pass runs again (now covering columns)
// and the result is transposed back. src is not modified.
func GaussianBlur(src *image.Grid, radius, workers int, exec parallel.Executor) (*image.Grid, error) {
	if err := validate(src, radius, workers); err != nil {
		return nil, err
	}
	if radius == 0 {
		return src.Clone(), nil
	}

	kernel := CachedGaussianKernel(radius)

	horizontal, err := convolvePass(src, kernel, workers, exec)
	if err != nil {
		return nil, fmt.Errorf("filter: horizontal pass: %w", err)
	}

	columns, err := transpose(horizontal)
	if err != nil {
		return nil, err
	}

	vertical, err := convolvePass(columns, kernel, workers, exec)
	if err != nil {
		return nil, fmt.Errorf("filter: vertical pass: %w", err)
	}

	return transpose(vertical)
}

// transpose runs image.Transpose under the worker panic boundary.
func transpose(g *image.Grid) (*image.Grid, error) {
	var out *image.Grid
	err := parallel.Guard("transpose", func() error {
		out = image.Transpose(g)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return out, nil
}

// convolvePass applies ConvolveRows to every row of src in parallel.
func convolvePass(src *image.Grid, kernel []float64, workers int, exec parallel.Executor) (*image.Grid, error) {
	dst, err := image.NewGrid(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	err = parallel.ForRows(exec, dst, workers, func(start, end int, out []byte) error {
		ConvolveRows(src, kernel, start, end, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// validate rejects arguments before any work is dispatched.
func validate(src *image.Grid, radius, workers int) error {
	if src == nil {
		return ErrNilSource
	}
	if radius < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	if workers < 1 {
		return fmt.Errorf("%w: got %d", parallel.ErrInvalidWorkerCount, workers)
	}
	return nil
}
