package image

import (
	"image"

	"golang.org/x/image/draw"
)

// FromStdImage copies a standard library image into a new Grid.
// Non-NRGBA sources are converted with draw.Src, which un-premultiplies
// alpha so the grid holds straight RGBA8 like the file it came from.
func FromStdImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: rows can be copied verbatim.
	if nrgba, ok := img.(*image.NRGBA); ok {
		stride := g.Stride()
		for y := range g.height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(g.Row(y), nrgba.Pix[srcStart:srcStart+stride])
		}
		return g, nil
	}

	dst := &image.NRGBA{
		Pix:    g.pix,
		Stride: g.Stride(),
		Rect:   image.Rect(0, 0, g.width, g.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return g, nil
}

// ToStdImage returns a copy of the grid as a non-premultiplied image.
func (g *Grid) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	copy(nrgba.Pix, g.pix)
	return nrgba
}
