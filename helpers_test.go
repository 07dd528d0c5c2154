package imfilter

import (
	"image/color"
	"testing"
)

// newSolidPixmap creates a pixmap filled with one color.
func newSolidPixmap(t testing.TB, w, h int, r, g, b, a uint8) *Pixmap {
	t.Helper()
	p, err := NewPixmap(w, h)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d) = %v", w, h, err)
	}
	p.Clear(color.NRGBA{R: r, G: g, B: b, A: a})
	return p
}

// newNoisePixmap creates a pixmap of deterministic pseudo-random bytes.
func newNoisePixmap(t testing.TB, w, h int, seed uint32) *Pixmap {
	t.Helper()
	pix := make([]byte, w*h*4)
	for i := range pix {
		seed = seed*1664525 + 1013904223
		pix[i] = byte(seed >> 24)
	}
	p, err := NewPixmapFromData(w, h, pix)
	if err != nil {
		t.Fatalf("NewPixmapFromData() = %v", err)
	}
	return p
}
