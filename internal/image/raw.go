package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// RawExt is the file extension of the zstd-compressed raw RGBA8 container.
const RawExt = ".rgbaz"

// Raw container layout:
//
//	[4]byte  magic "RGBZ"
//	uint32   width  (little endian)
//	uint32   height (little endian)
//	...      zstd stream of width*height*4 pixel bytes
const (
	rawMagic     = "RGBZ"
	rawHeaderLen = 12

	// maxRawPixels bounds the allocation a corrupt header can request.
	maxRawPixels = 1 << 28
)

// ErrRawFormat is returned when a raw container header is malformed.
var ErrRawFormat = errors.New("image: malformed raw container")

// EncodeRaw writes g to w as a raw container.
func EncodeRaw(w io.Writer, g *Grid) error {
	var hdr [rawHeaderLen]byte
	copy(hdr[:4], rawMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(g.width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(g.height))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("image: write raw header: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("image: create zstd writer: %w", err)
	}
	if _, err := enc.Write(g.pix); err != nil {
		_ = enc.Close()
		return fmt.Errorf("image: write raw pixels: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("image: flush raw pixels: %w", err)
	}
	return nil
}

// DecodeRaw reads a raw container from r.
func DecodeRaw(r io.Reader) (*Grid, error) {
	var hdr [rawHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrRawFormat, err)
	}
	if string(hdr[:4]) != rawMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrRawFormat, hdr[:4])
	}

	width := int(binary.LittleEndian.Uint32(hdr[4:8]))
	height := int(binary.LittleEndian.Uint32(hdr[8:12]))
	if width <= 0 || height <= 0 || width > maxRawPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("image: create zstd reader: %w", err)
	}
	defer dec.Close()

	pix := make([]byte, width*height*Channels)
	if _, err := io.ReadFull(dec, pix); err != nil {
		return nil, fmt.Errorf("%w: pixels: %v", ErrRawFormat, err)
	}

	return GridFromBytes(width, height, pix)
}
