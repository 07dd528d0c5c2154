package parallel

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/imfilter/internal/image"
)

// fillRowIndex writes the row number into every byte of each row.
func fillRowIndex(start, end int, out []byte) error {
	stride := len(out) / (end - start)
	for y := start; y < end; y++ {
		for i := range stride {
			out[(y-start)*stride+i] = byte(y)
		}
	}
	return nil
}

func newTestGrid(t *testing.T, w, h int) *image.Grid {
	t.Helper()
	g, err := image.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid() = %v", err)
	}
	return g
}

func TestForRows(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	for _, exec := range []Executor{Threads{}, pool} {
		for _, workers := range []int{1, 2, 7, 9, 100} {
			dst := newTestGrid(t, 3, 9)
			if err := ForRows(exec, dst, workers, fillRowIndex); err != nil {
				t.Fatalf("%s workers=%d: %v", exec.Name(), workers, err)
			}
			for y := range dst.Height() {
				for _, b := range dst.Row(y) {
					if b != byte(y) {
						t.Fatalf("%s workers=%d: row %d has byte %d", exec.Name(), workers, y, b)
					}
				}
			}
		}
	}
}

func TestForRowsPrivateBuffers(t *testing.T) {
	dst := newTestGrid(t, 2, 6)
	dst.Fill(9, 9, 9, 9)

	var mu sync.Mutex
	err := ForRows(Threads{}, dst, 3, func(start, end int, out []byte) error {
		if len(out) != (end-start)*dst.Stride() {
			t.Errorf("len(out) = %d, want %d", len(out), (end-start)*dst.Stride())
		}
		mu.Lock()
		defer mu.Unlock()
		for _, b := range out {
			if b != 0 {
				t.Error("worker buffer should be fresh, not a view of dst")
				break
			}
		}
		return fillRowIndex(start, end, out)
	})
	if err != nil {
		t.Fatalf("ForRows() = %v", err)
	}
}

func TestForRowsSkipsEmptyRanges(t *testing.T) {
	dst := newTestGrid(t, 1, 2)

	var mu sync.Mutex
	calls := 0
	err := ForRows(Threads{}, dst, 10, func(start, end int, out []byte) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return fillRowIndex(start, end, out)
	})
	if err != nil {
		t.Fatalf("ForRows() = %v", err)
	}
	if calls != 1 {
		t.Errorf("row func called %d times, want 1", calls)
	}
}

func TestForRowsError(t *testing.T) {
	boom := errors.New("boom")
	dst := newTestGrid(t, 2, 4)

	err := ForRows(Threads{}, dst, 2, func(start, end int, out []byte) error {
		if start == 2 {
			return boom
		}
		return fillRowIndex(start, end, out)
	})
	if !errors.Is(err, boom) {
		t.Errorf("ForRows() = %v, want %v", err, boom)
	}
}

func TestForRowsPanic(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	for _, exec := range []Executor{Threads{}, pool} {
		dst := newTestGrid(t, 2, 4)
		err := ForRows(exec, dst, 4, func(start, end int, out []byte) error {
			if start == 1 {
				_ = out[len(out)] // out-of-range access
			}
			return fillRowIndex(start, end, out)
		})
		if !errors.Is(err, ErrWorkerPanic) {
			t.Errorf("%s: ForRows() = %v, want ErrWorkerPanic", exec.Name(), err)
		}
	}
}

func TestForRowsInvalidWorkers(t *testing.T) {
	dst := newTestGrid(t, 2, 2)
	called := false
	err := ForRows(Threads{}, dst, 0, func(int, int, []byte) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("ForRows() = %v, want ErrInvalidWorkerCount", err)
	}
	if called {
		t.Error("no work should be dispatched for an invalid worker count")
	}
}
