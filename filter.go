package imfilter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/imfilter/internal/filter"
	grid "github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// Operation names a filter.
type Operation int

const (
	// OpBlur is the separable Gaussian blur.
	OpBlur Operation = iota

	// OpKuwahara is the Kuwahara filter.
	OpKuwahara
)

// String returns the operation name accepted by ParseOperation.
func (op Operation) String() string {
	switch op {
	case OpBlur:
		return "blur"
	case OpKuwahara:
		return "kuwahara"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation returns the operation with the given name:
// "blur" or "kuwahara".
func ParseOperation(name string) (Operation, error) {
	switch name {
	case "blur":
		return OpBlur, nil
	case "kuwahara":
		return OpKuwahara, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// GaussianBlur returns src blurred with a Gaussian of sigma radius/3,
// using workers row partitions. Alpha is blurred like the color channels.
// Radius 0 returns an identical copy.
func GaussianBlur(src *Pixmap, radius, workers int, opts ...Option) (*Pixmap, error) {
	return Apply(OpBlur, src, radius, workers, opts...)
}

// Kuwahara returns src smoothed by the Kuwahara filter with quadrants of
// side radius+1, using workers row partitions. Alpha is copied from src.
// Radius 0 returns an identical copy.
func Kuwahara(src *Pixmap, radius, workers int, opts ...Option) (*Pixmap, error) {
	return Apply(OpKuwahara, src, radius, workers, opts...)
}

// Apply runs op on src. It returns either a complete result or an error,
// never a partially filtered image.
func Apply(op Operation, src *Pixmap, radius, workers int, opts ...Option) (*Pixmap, error) {
	if src == nil || src.grid == nil {
		return nil, fmt.Errorf("imfilter: %v: nil source", op)
	}
	if radius < 0 {
		return nil, fmt.Errorf("imfilter: %v: %w: got %d", op, ErrInvalidRadius, radius)
	}
	if workers < 1 {
		return nil, fmt.Errorf("imfilter: %v: %w: got %d", op, ErrInvalidWorkerCount, workers)
	}

	o := newOptions(opts)
	exec, release, err := o.executor()
	if err != nil {
		return nil, fmt.Errorf("imfilter: %v: %w", op, err)
	}
	defer release()

	log := Logger().With(
		"op", op.String(),
		"width", src.Width(),
		"height", src.Height(),
		"radius", radius,
		"workers", workers,
		"scheduler", exec.Name(),
	)
	log.Debug("imfilter: dispatch")

	start := time.Now()
	var out *grid.Grid
	switch op {
	case OpBlur:
		out, err = blur(src.grid, radius, workers, exec, log)
	case OpKuwahara:
		out, err = kuwahara(src.grid, radius, workers, exec, log)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownOperation, op)
	}
	if err != nil {
		log.Warn("imfilter: aborted", "panic", errors.Is(err, ErrWorkerPanic), "err", err)
		return nil, fmt.Errorf("imfilter: %v: %w", op, err)
	}

	log.Info("imfilter: done", "elapsed", time.Since(start))
	return &Pixmap{grid: out}, nil
}

func blur(src *grid.Grid, radius, workers int, exec parallel.Executor, log *slog.Logger) (*grid.Grid, error) {
	log.Debug("imfilter: kernel", "size", 2*radius+1, "sigma", float64(radius)/3)
	return filter.GaussianBlur(src, radius, workers, exec)
}

func kuwahara(src *grid.Grid, radius, workers int, exec parallel.Executor, log *slog.Logger) (*grid.Grid, error) {
	start := time.Now()
	sat, err := filter.BuildIntegralImage(src)
	if err != nil {
		return nil, err
	}
	log.Debug("imfilter: summed-area table built", "elapsed", time.Since(start))
	return filter.KuwaharaWithTable(src, sat, radius, workers, exec)
}
