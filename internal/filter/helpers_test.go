package filter

import (
	"testing"

	"github.com/gogpu/imfilter/internal/image"
	"github.com/gogpu/imfilter/internal/parallel"
)

// Test helper functions shared across filter tests.

// newFilledGrid creates a grid filled with the given color.
func newFilledGrid(t testing.TB, w, h int, r, g, b, a uint8) *image.Grid {
	t.Helper()
	grid, err := image.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) = %v", w, h, err)
	}
	grid.Fill(r, g, b, a)
	return grid
}

// newCheckerboard creates a grid alternating black and white, with black
// at (0, 0). Alpha is opaque.
func newCheckerboard(t testing.TB, w, h int) *image.Grid {
	t.Helper()
	grid := newFilledGrid(t, w, h, 0, 0, 0, 255)
	for y := range h {
		for x := range w {
			if (x+y)%2 == 1 {
				grid.Set(x, y, 255, 255, 255, 255)
			}
		}
	}
	return grid
}

// newNoiseGrid creates a grid of deterministic pseudo-random bytes,
// alpha included.
func newNoiseGrid(t testing.TB, w, h int, seed uint32) *image.Grid {
	t.Helper()
	grid := newFilledGrid(t, w, h, 0, 0, 0, 0)
	pix := grid.Pix()
	for i := range pix {
		seed = seed*1664525 + 1013904223
		pix[i] = byte(seed >> 24)
	}
	return grid
}

// executors returns every executor under test. Pools are closed at the
// end of the test.
func executors(t testing.TB) []parallel.Executor {
	t.Helper()
	pool := parallel.NewPool(3)
	t.Cleanup(pool.Close)
	return []parallel.Executor{parallel.Threads{}, pool}
}
