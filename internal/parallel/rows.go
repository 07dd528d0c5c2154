package parallel

import (
	"fmt"

	"github.com/gogpu/imfilter/internal/image"
)

// RowFunc computes rows [start, end) into out, which is a private buffer
// of exactly (end-start)*stride bytes.
type RowFunc func(start, end int, out []byte) error

// ForRows fills dst by running fn over a row partition of dst.
//
// The destination is pre-split into one disjoint slice per worker. Each
// worker computes its range into a private scratch buffer and then copies
// it into its own slice in a single step; it never touches dst otherwise.
// On error the contents of dst are unspecified and must be discarded.
func ForRows(exec Executor, dst *image.Grid, workers int, fn RowFunc) error {
	ranges, err := Partition(dst.Height(), workers)
	if err != nil {
		return err
	}

	stride := dst.Stride()
	tasks := make([]Task, len(ranges))
	for i, r := range ranges {
		if r.Empty() {
			tasks[i] = func() error { return nil }
			continue
		}
		slot := dst.Rows(r.Start, r.End)
		tasks[i] = func() error {
			local := image.GetScratch(r.Len() * stride)
			defer image.PutScratch(local)
			if err := fn(r.Start, r.End, local); err != nil {
				return fmt.Errorf("rows [%d,%d): %w", r.Start, r.End, err)
			}
			copy(slot, local)
			return nil
		}
	}

	return exec.Execute(tasks)
}
