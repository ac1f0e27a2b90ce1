package display

import (
	"fmt"
	"image"

	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/mmio"
	"github.com/smifb/smifb/hw/vram"
)

// The scanout engine fetches lines at this alignment.
const pitchAlign = 16

// AlignPitch returns the device memory pitch for a source pitch.
func AlignPitch(pitch int) int {
	return mmio.AlignUp(pitch, pitchAlign)
}

// PrimaryPlane scans out a surface copied into the primary region of a
// controller's partition.
type PrimaryPlane struct {
	dev    *Device
	region vram.Region
	size   int
}

func NewPrimaryPlane(d *Device) *PrimaryPlane {
	return &PrimaryPlane{dev: d}
}

func (p *PrimaryPlane) Role() Role { return Primary }

func (p *PrimaryPlane) Region() vram.Region { return p.region }

// Size returns the number of bytes the surface occupies in device memory.
func (p *PrimaryPlane) Size() int { return p.size }

func (p *PrimaryPlane) Check(topo Topology, s *State) error {
	if !s.Bound() {
		return nil
	}
	fb := s.FB
	if !framebuffer.Supported(framebuffer.PrimaryFormats, fb.Format) {
		return fmt.Errorf("%w: %v on primary plane", ErrInvalidFormat, fb.Format)
	}
	if s.Src.Size() != s.Dst.Size() {
		return fmt.Errorf("%w: %v to %v", ErrScaling, s.Src.Size(), s.Dst.Size())
	}
	size := fb.Rect.Size()
	if !s.Src.In(fb.Rect) || size.X > chip.MaxFBWidth || size.Y > chip.MaxFBHeight {
		return fmt.Errorf("%w: source %v of %v surface", ErrInvalidGeometry, s.Src, fb.Rect)
	}
	pitch := AlignPitch(fb.Stride)
	if pitch > p.dev.chip.MaxPitch {
		return fmt.Errorf("%w: pitch of %d bytes exceeds %d on %v",
			ErrInvalidGeometry, pitch, p.dev.chip.MaxPitch, p.dev.chip)
	}
	region, err := p.dev.arena.Primary(0)
	if err != nil {
		return err
	}
	if need := pitch * size.Y; need > region.Len {
		return fmt.Errorf("%w: surface needs %d bytes, primary region holds %d",
			vram.ErrOutOfRange, need, region.Len)
	}
	return nil
}

// Bind points the plane at the primary region of controller ctrl.
func (p *PrimaryPlane) Bind(ctrl int) error {
	region, err := p.dev.arena.Primary(ctrl)
	if err != nil {
		return err
	}
	p.region = region
	return nil
}

// ApplyDamage copies the damaged rectangles of src to the plane's region.
// Rows in device memory are destPitch bytes apart. Rectangles must lie
// within src.
func (p *PrimaryPlane) ApplyDamage(src *framebuffer.Surface, damage []image.Rectangle, destPitch int) error {
	bpp := src.BytesPerPixel()
	for _, r := range damage {
		if !r.In(src.Rect) {
			debug.Assertf(false, "display: damage %v outside of surface %v", r, src.Rect)
			debug.Logger().Warn("display: damage outside of surface skipped",
				"damage", r, "surface", src.Rect)
			continue
		}
		if r.Empty() {
			continue
		}
		off := (r.Min.Y-src.Rect.Min.Y)*destPitch + (r.Min.X-src.Rect.Min.X)*bpp
		err := p.dev.arena.WriteRows(p.region, off, destPitch,
			src.Pix[src.PixOffset(r.Min.X, r.Min.Y):], src.Stride, r.Dx()*bpp, r.Dy())
		if err != nil {
			return err
		}
	}
	return nil
}

// ProgramScanout starts scanout of controller ctrl at pixel (x, y) of the
// surface in its partition.
func (p *PrimaryPlane) ProgramScanout(ctrl, destPitch, x, y, bpp int) error {
	base, err := p.dev.BaseOffset(ctrl)
	if err != nil {
		return err
	}
	offset := base + y*destPitch + x*bpp
	p.dev.engine.SetBase(ctrl, uint32(destPitch), uint32(offset))
	return nil
}

func (p *PrimaryPlane) Update(topo Topology, s *State, damage []image.Rectangle) error {
	if !s.Visible() {
		return nil
	}
	ctrl, ok, err := p.dev.resolve(topo, s.Pipeline)
	if !ok {
		return err
	}
	if err = p.Bind(ctrl); err != nil {
		return err
	}

	fb := s.FB
	pitch := AlignPitch(fb.Stride)
	p.size = pitch * fb.Rect.Dy()
	if err = p.ApplyDamage(fb, damage, pitch); err != nil {
		return err
	}
	src := s.Src.Min.Sub(fb.Rect.Min)
	return p.ProgramScanout(ctrl, pitch, src.X, src.Y, fb.BytesPerPixel())
}

// Disable leaves the controller scanning out the last surface.
func (p *PrimaryPlane) Disable(topo Topology, old *State) {
	debug.Logger().Debug("display: primary plane disabled", "state", old)
}
