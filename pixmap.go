package imfilter

import (
	"image"
	"image/color"

	grid "github.com/gogpu/imfilter/internal/image"
)

// Pixmap is a row-major RGBA8 raster: 4 bytes per pixel in R, G, B, A
// order, no padding between rows. Color is not premultiplied by alpha.
type Pixmap struct {
	grid *grid.Grid
}

// NewPixmap creates a transparent black pixmap.
func NewPixmap(width, height int) (*Pixmap, error) {
	g, err := grid.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Pixmap{grid: g}, nil
}

// NewPixmapFromData wraps pix without copying. len(pix) must equal
// width*height*4. The caller must not modify pix while a filter reads it.
func NewPixmapFromData(width, height int, pix []byte) (*Pixmap, error) {
	g, err := grid.GridFromBytes(width, height, pix)
	if err != nil {
		return nil, err
	}
	return &Pixmap{grid: g}, nil
}

// FromImage copies any image.Image into a new pixmap.
func FromImage(img image.Image) (*Pixmap, error) {
	g, err := grid.FromStdImage(img)
	if err != nil {
		return nil, err
	}
	return &Pixmap{grid: g}, nil
}

// Load decodes an image file. Supported: PNG, JPEG, GIF, BMP, TIFF, WebP
// and the zstd raw container (.rgbaz).
func Load(path string) (*Pixmap, error) {
	g, err := grid.Load(path)
	if err != nil {
		return nil, err
	}
	return &Pixmap{grid: g}, nil
}

// Save encodes the pixmap, choosing the format from the file extension.
// Supported: .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff and .rgbaz.
func (p *Pixmap) Save(path string) error {
	return p.grid.Save(path)
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.grid.Width()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.grid.Height()
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []byte {
	return p.grid.Pix()
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if p.grid.PixelOffset(x, y) < 0 {
		return
	}
	p.grid.Set(x, y, c.R, c.G, c.B, c.A)
}

// GetPixel returns the color of a single pixel, or transparent black if
// out of bounds.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if p.grid.PixelOffset(x, y) < 0 {
		return color.NRGBA{}
	}
	r, g, b, a := p.grid.At(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	p.grid.Fill(c.R, c.G, c.B, c.A)
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{grid: p.grid.Clone()}
}

// Equal reports whether both pixmaps have the same size and bytes.
func (p *Pixmap) Equal(o *Pixmap) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.grid.Equal(o.grid)
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return p.grid.ToStdImage()
}
