package framebuffer

import (
	"fmt"
	"image/color"
	"slices"
)

// Format is the memory layout of a pixel. Multi-byte pixels are little
// endian, so the first letter of the name is the most significant component.
type Format uint8

const (
	RGB565 Format = iota + 1
	BGR565
	RGB888
	XRGB8888
	RGBA8888
	ARGB8888
)

// PrimaryFormats can be scanned out by the primary plane.
var PrimaryFormats = []Format{RGB565, BGR565, RGB888, XRGB8888, RGBA8888, ARGB8888}

// CursorFormats are accepted by the cursor plane.
var CursorFormats = []Format{RGB565, BGR565, ARGB8888}

// Supported reports whether f is in formats.
func Supported(formats []Format, f Format) bool {
	return slices.Contains(formats, f)
}

func (f Format) BytesPerPixel() int {
	switch f {
	case RGB565, BGR565:
		return 2
	case RGB888:
		return 3
	case XRGB8888, RGBA8888, ARGB8888:
		return 4
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case BGR565:
		return "BGR565"
	case RGB888:
		return "RGB888"
	case XRGB8888:
		return "XRGB8888"
	case RGBA8888:
		return "RGBA8888"
	case ARGB8888:
		return "ARGB8888"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f == RGBA8888 || f == ARGB8888
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range PrimaryFormats {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("framebuffer: unknown format %q", s)
}

// Stores a pixel in RGB with 16bit (5:6:5)
type colorRGB565 uint16

func (c colorRGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1f
	g = uint32(c>>5) & 0x3f
	b = uint32(c) & 0x1f
	r = (r<<11 | r<<6 | r<<1) | r>>4
	g = (g<<10 | g<<4) | g>>2
	b = (b<<11 | b<<6 | b<<1) | b>>4
	return r, g, b, 0xffff
}

var RGB565Model color.Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(colorRGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return colorRGB565((r & 0xf800) | (g&0xfc00)>>5 | (b&0xf800)>>11)
}
