// Package framebuffer provides the source surfaces planes are updated from,
// and a shadow framebuffer that records which parts of a surface changed.
package framebuffer

import (
	"image"
	"image/color"
)

// Surface is a pixel buffer in system memory. It implements draw.Image, so
// all the drawing tools from the standard library can be used.
type Surface struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
	Format Format
}

// NewSurface allocates a surface with tightly packed rows.
func NewSurface(r image.Rectangle, f Format) *Surface {
	stride := r.Dx() * f.BytesPerPixel()
	return &Surface{
		Pix:    make([]uint8, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
		Format: f,
	}
}

func (p *Surface) Bounds() image.Rectangle { return p.Rect }

func (p *Surface) ColorModel() color.Model {
	switch p.Format {
	case RGB565, BGR565:
		return RGB565Model
	}
	return color.RGBAModel
}

// BytesPerPixel returns the size of a pixel of the surface's format.
func (p *Surface) BytesPerPixel() int { return p.Format.BytesPerPixel() }

// Size returns the number of bytes spanned by the surface's rows.
func (p *Surface) Size() int { return p.Stride * p.Rect.Dy() }

// SubImage returns the part of p visible through r. The returned surface
// shares pixels with p.
func (p *Surface) SubImage(r image.Rectangle) *Surface {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Surface{Stride: p.Stride, Format: p.Format}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Surface{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
		Format: p.Format,
	}
}

func (p *Surface) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*p.Format.BytesPerPixel()
}

func (p *Surface) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+p.Format.BytesPerPixel() : i+p.Format.BytesPerPixel()]
	switch p.Format {
	case RGB565:
		return colorRGB565(uint16(s[0]) | uint16(s[1])<<8)
	case BGR565:
		v := uint16(s[0]) | uint16(s[1])<<8
		return colorRGB565(v<<11 | v&0x07e0 | v>>11)
	case RGB888:
		return color.RGBA{s[2], s[1], s[0], 0xff}
	case XRGB8888:
		return color.RGBA{s[2], s[1], s[0], 0xff}
	case RGBA8888:
		return color.RGBA{s[3], s[2], s[1], s[0]}
	case ARGB8888:
		return color.RGBA{s[2], s[1], s[0], s[3]}
	}
	return color.RGBA{}
}

func (p *Surface) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+p.Format.BytesPerPixel() : i+p.Format.BytesPerPixel()]
	switch p.Format {
	case RGB565:
		v := rgb565Model(c).(colorRGB565)
		s[0], s[1] = uint8(v), uint8(v>>8)
	case BGR565:
		v := rgb565Model(c).(colorRGB565)
		v = v<<11 | v&0x07e0 | v>>11
		s[0], s[1] = uint8(v), uint8(v>>8)
	default:
		r, g, b, a := c.RGBA()
		r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
		switch p.Format {
		case RGB888:
			s[0], s[1], s[2] = b8, g8, r8
		case XRGB8888:
			s[0], s[1], s[2], s[3] = b8, g8, r8, 0xff
		case RGBA8888:
			s[0], s[1], s[2], s[3] = a8, b8, g8, r8
		case ARGB8888:
			s[0], s[1], s[2], s[3] = b8, g8, r8, a8
		}
	}
}
