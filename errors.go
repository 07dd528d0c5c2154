package imfilter

import (
	"errors"

	"github.com/gogpu/imfilter/internal/filter"
	grid "github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// Errors returned by this package. Use errors.Is to test for them; the
// returned errors wrap these with call-specific detail.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrBufferSize is returned when a pixel buffer is not width*height*4 bytes.
	ErrBufferSize = grid.ErrBufferSize

	// ErrInvalidRadius is returned for a negative radius.
	ErrInvalidRadius = filter.ErrInvalidRadius

	// ErrInvalidWorkerCount is returned when fewer than one worker is requested.
	ErrInvalidWorkerCount = parallel.ErrInvalidWorkerCount

	// ErrWorkerPanic is returned when a worker panicked. No image is returned.
	ErrWorkerPanic = parallel.ErrWorkerPanic

	// ErrUnsupportedFormat is returned when saving to an unknown extension.
	ErrUnsupportedFormat = grid.ErrUnsupportedFormat

	// ErrUnknownOperation is returned by ParseOperation.
	ErrUnknownOperation = errors.New("imfilter: unknown operation")

	// ErrUnknownScheduler is returned by ParseScheduler.
	ErrUnknownScheduler = errors.New("imfilter: unknown scheduler")
)
