package image

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Register decoders beyond the standard library set.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// jpegQuality is used when saving to .jpg/.jpeg.
const jpegQuality = 95

// Load reads an image file into a Grid. Raw containers are recognised by
// RawExt; everything else is decoded by content with EXIF orientation
// applied.
func Load(path string) (*Grid, error) {
	path = filepath.Clean(path)

	if isRaw(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("image: open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return DecodeRaw(f)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", path, err)
	}
	return FromStdImage(img)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Grid, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// Save writes g to path, choosing the encoder from the file extension.
func (g *Grid) Save(path string) error {
	path = filepath.Clean(path)

	var format imaging.Format
	raw := isRaw(path)
	if !raw {
		var err error
		format, err = imaging.FormatFromFilename(path)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if raw {
		err = EncodeRaw(f, g)
	} else {
		err = g.Encode(f, format)
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes g to w in the given format.
func (g *Grid) Encode(w io.Writer, format imaging.Format) error {
	if err := imaging.Encode(w, g.ToStdImage(), format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

func isRaw(path string) bool {
	return strings.EqualFold(filepath.Ext(path), RawExt)
}
