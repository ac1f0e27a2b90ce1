// Package cursor converts cursor images into the formats read by the
// hardware cursor engines.
//
// The engine always reads a Width×Height image. Smaller images are placed
// in the top left corner of a transparent canvas.
package cursor

import (
	"errors"
	"fmt"
	"image"

	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/chip"
)

const (
	Width  = chip.CursorWidth
	Height = chip.CursorHeight

	// ARGBBytes is the size of a 32bpp cursor image.
	ARGBBytes = 4 * Width * Height

	// LegacyBytes is the size of a 2bpp cursor image.
	LegacyBytes = Width * Height / 4
)

var (
	ErrInvalidGeometry = errors.New("cursor: invalid geometry")
	ErrFormat          = errors.New("cursor: unsupported format")
)

// Validate checks that a w×h image fits the cursor engine.
func Validate(w, h int) error {
	if w > Width || h > Height || w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrInvalidGeometry, w, h, Width, Height)
	}
	return nil
}

// Canvas is a full size ARGB8888 cursor image.
type Canvas [ARGBBytes]byte

// Load replaces the content of c with s. Pixels not covered by s are
// transparent.
func (c *Canvas) Load(s *framebuffer.Surface) error {
	size := s.Bounds().Size()
	if err := Validate(size.X, size.Y); err != nil {
		return err
	}
	if !framebuffer.Supported(framebuffer.CursorFormats, s.Format) {
		return fmt.Errorf("%w: %v", ErrFormat, s.Format)
	}

	clear(c[:])
	const stride = 4 * Width
	if s.Format == framebuffer.ARGB8888 {
		for y := range size.Y {
			i := s.PixOffset(s.Rect.Min.X, s.Rect.Min.Y+y)
			copy(c[y*stride:y*stride+4*size.X], s.Pix[i:i+4*size.X])
		}
		return nil
	}

	for y := range size.Y {
		for x := range size.X {
			r, g, b, a := s.At(s.Rect.Min.X+x, s.Rect.Min.Y+y).RGBA()
			p := c[y*stride+4*x : y*stride+4*x+4]
			p[0], p[1], p[2], p[3] = uint8(b>>8), uint8(g>>8), uint8(r>>8), uint8(a>>8)
		}
	}
	return nil
}

// Bounds returns the area covered by the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Encode returns the image the cursor engine reads for s in the given
// format.
func Encode(f chip.CursorFormat, s *framebuffer.Surface) ([]byte, error) {
	var c Canvas
	if err := c.Load(s); err != nil {
		return nil, err
	}
	switch f {
	case chip.Legacy2bpp:
		return ToLegacy(nil, c[:]), nil
	case chip.ARGB8888:
		return c[:], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrFormat, f)
}

// Size returns the number of bytes of a cursor image in format f.
func Size(f chip.CursorFormat) int {
	if f == chip.Legacy2bpp {
		return LegacyBytes
	}
	return ARGBBytes
}
