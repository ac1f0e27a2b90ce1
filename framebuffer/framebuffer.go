package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/embeddedgo/display/pix"

	"github.com/smifb/smifb/debug"
)

// More damage rectangles than this are replaced by a single rectangle
// covering the whole surface.
const maxDamageRects = 16

// FlushFunc receives the surface and the rectangles that changed since the
// previous flush.
type FlushFunc func(s *Surface, damage []image.Rectangle) error

// Framebuffer is a shadow framebuffer. It implements pix.Driver, so a
// pix.Display can render into the surface. All drawing happens in system
// memory. Flush passes the damaged rectangles to a FlushFunc, which usually
// copies them to device memory with a primary plane update.
type Framebuffer struct {
	surface *Surface
	fill    image.Uniform
	damage  []image.Rectangle
	full    bool
	flush   FlushFunc
	err     error
}

var _ pix.Driver = (*Framebuffer)(nil)

func NewFramebuffer(s *Surface, flush FlushFunc) *Framebuffer {
	return &Framebuffer{
		surface: s,
		fill:    image.Uniform{color.Black},
		flush:   flush,
	}
}

func (fb *Framebuffer) Surface() *Surface { return fb.surface }

func (fb *Framebuffer) Bounds() image.Rectangle { return fb.surface.Bounds() }

// Damage returns the rectangles changed since the last flush.
func (fb *Framebuffer) Damage() []image.Rectangle { return fb.damage }

// Invalidate marks r as changed without drawing to it.
func (fb *Framebuffer) Invalidate(r image.Rectangle) {
	bounds := fb.surface.Bounds()
	r = r.Intersect(bounds)
	if r.Empty() || fb.full {
		return
	}
	for i, d := range fb.damage {
		if r.In(d) {
			return
		}
		if d.In(r) {
			fb.damage[i] = r
			return
		}
	}
	fb.damage = append(fb.damage, r)
	if len(fb.damage) > maxDamageRects {
		fb.full = true
		fb.damage = append(fb.damage[:0], bounds)
	}
}

func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(fb.surface, r, src, sp, mask, mp, op)
	fb.Invalidate(r)
}

func (fb *Framebuffer) Fill(r image.Rectangle) {
	fb.Draw(r, &fb.fill, image.Point{}, nil, image.Point{}, draw.Over)
}

func (fb *Framebuffer) SetColor(c color.Color) {
	fb.fill.C = c
}

// SetDir only supports the native orientation.
func (fb *Framebuffer) SetDir(dir int) image.Rectangle {
	debug.Assert(dir == 0, "framebuffer: rotation not supported")
	return fb.surface.Bounds()
}

// Flush passes the damage to the FlushFunc. If it fails, the damage is kept
// and passed again by the next Flush.
func (fb *Framebuffer) Flush() {
	if len(fb.damage) == 0 {
		return
	}
	if fb.flush != nil {
		if err := fb.flush(fb.surface, fb.damage); err != nil {
			if fb.err == nil {
				fb.err = err
			}
			return
		}
	}
	fb.damage = fb.damage[:0]
	fb.full = false
}

// Err returns the first error returned by the FlushFunc. If clear is true
// the error is reset.
func (fb *Framebuffer) Err(clear bool) error {
	err := fb.err
	if clear {
		fb.err = nil
	}
	return err
}
