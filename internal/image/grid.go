// Package image provides the RGBA8 pixel grid shared by the filters, plus
// the codec edge that moves grids in and out of files.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Channels is the number of interleaved bytes per pixel (R, G, B, A).
const Channels = 4

// Common errors for grid construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrBufferSize is returned when a pixel buffer does not hold exactly
	// width*height*Channels bytes.
	ErrBufferSize = errors.New("image: buffer length does not match dimensions")
)

// Grid is a row-major RGBA8 raster with no padding between rows.
//
// A Grid handed to a filter as its source is read concurrently by every
// worker and must not be modified until the filter returns.
type Grid struct {
	pix    []byte
	width  int
	height int
}

// checkDimensions rejects non-positive sizes and sizes whose byte count
// does not fit in an int.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > math.MaxInt/Channels/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return nil
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		pix:    make([]byte, width*height*Channels),
		width:  width,
		height: height,
	}, nil
}

// GridFromBytes wraps an existing buffer without copying.
// The caller must not modify pix while the grid is in use.
func GridFromBytes(width, height int, pix []byte) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if want := width * height * Channels; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrBufferSize, len(pix), want, width, height)
	}
	return &Grid{pix: pix, width: width, height: height}, nil
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// Channels returns the number of bytes per pixel.
func (g *Grid) Channels() int {
	return Channels
}

// Stride returns the number of bytes per row.
func (g *Grid) Stride() int {
	return g.width * Channels
}

// Pix returns the raw pixel buffer.
func (g *Grid) Pix() []byte {
	return g.pix
}

// Row returns the bytes of row y.
func (g *Grid) Row(y int) []byte {
	return g.Rows(y, y+1)
}

// Rows returns the bytes of rows [y0, y1). The slice aliases the grid.
func (g *Grid) Rows(y0, y1 int) []byte {
	stride := g.Stride()
	return g.pix[y0*stride : y1*stride : y1*stride]
}

// PixelOffset returns the byte offset of pixel (x, y).
// Returns -1 if coordinates are out of bounds.
func (g *Grid) PixelOffset(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return (y*g.width + x) * Channels
}

// At returns the channels of pixel (x, y). Out-of-bounds reads panic.
func (g *Grid) At(x, y int) (r, gr, b, a uint8) {
	off := g.PixelOffset(x, y)
	if off < 0 {
		panic(fmt.Sprintf("image: pixel (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	p := g.pix[off : off+Channels : off+Channels]
	return p[0], p[1], p[2], p[3]
}

// Set writes pixel (x, y). Out-of-bounds writes panic.
func (g *Grid) Set(x, y int, r, gr, b, a uint8) {
	off := g.PixelOffset(x, y)
	if off < 0 {
		panic(fmt.Sprintf("image: pixel (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	p := g.pix[off : off+Channels : off+Channels]
	p[0], p[1], p[2], p[3] = r, gr, b, a
}

// Fill sets every pixel to the given color.
func (g *Grid) Fill(r, gr, b, a uint8) {
	for i := 0; i < len(g.pix); i += Channels {
		g.pix[i] = r
		g.pix[i+1] = gr
		g.pix[i+2] = b
		g.pix[i+3] = a
	}
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]byte, len(g.pix))
	copy(pix, g.pix)
	return &Grid{pix: pix, width: g.width, height: g.height}
}

// Equal reports whether both grids have the same dimensions and bytes.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.width == o.width && g.height == o.height && bytes.Equal(g.pix, o.pix)
}

// Transpose returns a new grid with width and height swapped, such that
// dst(x, y) == src(y, x). Transpose(Transpose(g)) equals g.
func Transpose(src *Grid) *Grid {
	dst := &Grid{
		pix:    make([]byte, len(src.pix)),
		width:  src.height,
		height: src.width,
	}

	for y := range src.height {
		row := src.Row(y)
		for x := range src.width {
			s := x * Channels
			d := (x*dst.width + y) * Channels
			copy(dst.pix[d:d+Channels], row[s:s+Channels])
		}
	}

	return dst
}
