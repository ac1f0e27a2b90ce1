package cursor

import (
	"image"
	"image/color"

	"github.com/smifb/smifb/debug"
)

// Symbol is the 2 bit value of a pixel in a legacy cursor.
type Symbol uint8

const (
	Transparent Symbol = iota
	ColorA             // drawn with the background color key
	ColorB             // drawn with the foreground color key
	ColorC             // drawn with the border color key, never produced by ToLegacy
)

// Pixels at least this opaque are drawn, all others are transparent.
const (
	alphaThreshold = 0xe0
	blueThreshold  = 0x80
)

// Classify returns the symbol for a pixel with blue channel b and alpha a.
func Classify(b, a uint8) Symbol {
	switch {
	case a < alphaThreshold:
		return Transparent
	case b < blueThreshold:
		return ColorA
	}
	return ColorB
}

// ToLegacy quantizes the ARGB8888 canvas src into a 2bpp cursor and appends
// it to dst[:0]. Four pixels are packed into each byte, the first pixel in
// the least significant bits.
func ToLegacy(dst, src []byte) []byte {
	debug.Assert(len(src) >= ARGBBytes, "cursor: short source image")

	if cap(dst) < LegacyBytes {
		dst = make([]byte, LegacyBytes)
	}
	dst = dst[:LegacyBytes]
	for i := range dst {
		var v byte
		for j := range 4 {
			p := src[(4*i+j)*4:]
			v |= byte(Classify(p[0], p[3])) << (2 * j)
		}
		dst[i] = v
	}
	return dst
}

// Decode expands a 2bpp cursor into a paletted image. palette holds the
// colors of the three opaque symbols.
func Decode(src []byte, palette [3]color.Color) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, Height), color.Palette{
		color.Transparent, palette[0], palette[1], palette[2],
	})
	for i, v := range src[:min(len(src), LegacyBytes)] {
		for j := range 4 {
			img.Pix[4*i+j] = (v >> (2 * j)) & 0x3
		}
	}
	return img
}
