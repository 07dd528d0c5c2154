// Package parallel runs per-row filter work across a fixed number of
// partitions on a pluggable executor.
//
// Rows of the destination are split into contiguous ranges, one per
// worker. Each worker computes its range into a private buffer and then
// copies it into its own disjoint slice of the destination exactly once,
// so no locking is needed and the result does not depend on the executor
// or on scheduling order.
package parallel

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkerCount is returned when fewer than one worker is requested.
var ErrInvalidWorkerCount = errors.New("parallel: worker count must be at least 1")

// Range is a half-open range of rows [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range contains no rows.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Partition splits totalRows into workers contiguous ranges.
//
// Every worker gets totalRows/workers rows; the last one also takes the
// remainder. When workers exceeds totalRows all but the last range are
// empty.
func Partition(totalRows, workers int) ([]Range, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	if totalRows < 0 {
		return nil, fmt.Errorf("parallel: negative row count %d", totalRows)
	}

	rowsPerWorker := totalRows / workers
	ranges := make([]Range, workers)
	for i := range workers {
		start := i * rowsPerWorker
		end := start + rowsPerWorker
		if i == workers-1 {
			end = totalRows
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges, nil
}
