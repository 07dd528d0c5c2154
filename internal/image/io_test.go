package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestSaveLoadPNG(t *testing.T) {
	src := newSeqGrid(t, 6, 4)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := src.Save(path); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if !got.Equal(src) {
		t.Error("PNG round trip changed the grid")
	}
}

func TestSaveLoadRaw(t *testing.T) {
	src := newSeqGrid(t, 3, 8)
	path := filepath.Join(t.TempDir(), "out.RGBAZ")

	if err := src.Save(path); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if !got.Equal(src) {
		t.Error("raw round trip changed the grid")
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	src := newSeqGrid(t, 2, 2)
	err := src.Save(filepath.Join(t.TempDir(), "out.xyz"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.rgbaz")); err == nil {
		t.Error("expected error for missing raw file")
	}
}

func TestEncodeDecode(t *testing.T) {
	src := newSeqGrid(t, 5, 5)

	var buf bytes.Buffer
	if err := src.Encode(&buf, imaging.PNG); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if !got.Equal(src) {
		t.Error("encode/decode changed the grid")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestFromStdImageNRGBASubImage(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = byte(i)
	}
	sub := full.SubImage(image.Rect(1, 2, 3, 4)).(*image.NRGBA)

	g, err := FromStdImage(sub)
	if err != nil {
		t.Fatalf("FromStdImage() = %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", g.Width(), g.Height())
	}
	for y := range 2 {
		for x := range 2 {
			want := full.NRGBAAt(x+1, y+2)
			r, gr, b, a := g.At(x, y)
			if (color.NRGBA{R: r, G: gr, B: b, A: a}) != want {
				t.Errorf("(%d,%d) = %d,%d,%d,%d, want %v", x, y, r, gr, b, a, want)
			}
		}
	}
}

func TestFromStdImageConverts(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 1, color.Gray{Y: 77})

	g, err := FromStdImage(gray)
	if err != nil {
		t.Fatalf("FromStdImage() = %v", err)
	}
	if r, gr, b, a := g.At(1, 1); r != 77 || gr != 77 || b != 77 || a != 255 {
		t.Errorf("(1,1) = %d,%d,%d,%d, want 77,77,77,255", r, gr, b, a)
	}
}

func TestFromStdImageEmpty(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 5))
	if _, err := FromStdImage(empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestToStdImageCopies(t *testing.T) {
	g := newSeqGrid(t, 2, 2)
	img := g.ToStdImage()
	img.Pix[0] = 255
	if g.Pix()[0] == 255 {
		t.Error("ToStdImage should return a copy")
	}
}
