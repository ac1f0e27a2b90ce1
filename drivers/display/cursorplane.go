package display

import (
	"fmt"
	"image"

	"github.com/smifb/smifb/cursor"
	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/dc"
	"github.com/smifb/smifb/hw/vram"
)

// ValidateGeometry fails if a w×h image does not fit the cursor engine.
func ValidateGeometry(w, h int) error {
	return cursor.Validate(w, h)
}

// CursorPlane drives the hardware cursor. The image is stored at the end of
// the controller's partition and always replaced as a whole.
type CursorPlane struct {
	dev    *Device
	region vram.Region
}

func NewCursorPlane(d *Device) *CursorPlane {
	return &CursorPlane{dev: d}
}

func (p *CursorPlane) Role() Role { return Cursor }

func (p *CursorPlane) Region() vram.Region { return p.region }

func (p *CursorPlane) Check(topo Topology, s *State) error {
	if !s.Bound() {
		return nil
	}
	if !framebuffer.Supported(framebuffer.CursorFormats, s.FB.Format) {
		return fmt.Errorf("%w: %v on cursor plane", ErrInvalidFormat, s.FB.Format)
	}
	if !s.Src.In(s.FB.Rect) {
		return fmt.Errorf("%w: source %v of %v surface", ErrInvalidGeometry, s.Src, s.FB.Rect)
	}
	return ValidateGeometry(s.Src.Dx(), s.Src.Dy())
}

// Upload converts img to the chip's cursor format, stores it in the cursor
// region of controller ctrl and enables the cursor.
func (p *CursorPlane) Upload(ctrl int, img *framebuffer.Surface) error {
	data, err := cursor.Encode(p.dev.chip.CursorFormat, img)
	if err != nil {
		return err
	}
	return p.load(ctrl, data)
}

// UploadBlob is Upload for an image that was converted in advance.
func (p *CursorPlane) UploadBlob(ctrl int, b *cursor.Blob) error {
	if b.Format != p.dev.chip.CursorFormat {
		return fmt.Errorf("%w: blob format %v on %v", ErrInvalidFormat, b.Format, p.dev.chip)
	}
	if len(b.Data) != cursor.Size(b.Format) {
		return fmt.Errorf("%w: %d bytes of cursor data", cursor.ErrFormat, len(b.Data))
	}
	if err := ValidateGeometry(b.Width, b.Height); err != nil {
		return err
	}
	return p.load(ctrl, b.Data)
}

func (p *CursorPlane) load(ctrl int, data []byte) error {
	region, err := p.dev.arena.Cursor(ctrl)
	if err != nil {
		return err
	}
	if err = p.dev.arena.WriteAt(region, data, 0); err != nil {
		return err
	}
	p.region = region

	p.dev.engine.InitCursor(ctrl, uint32(region.Off), dc.DefaultColors)
	p.dev.engine.EnableCursor(ctrl, dc.ModeFor(p.dev.chip))
	return nil
}

// SetPosition moves the cursor of controller ctrl. Coordinates may be
// negative.
func (p *CursorPlane) SetPosition(ctrl, x, y int) error {
	if !p.dev.chip.ValidController(ctrl) {
		return fmt.Errorf("%w: %v has no controller %d", ErrUnknownTopology, p.dev.chip, ctrl)
	}
	p.dev.engine.SetCursorPosition(ctrl, dc.EncodePosition(x, y))
	return nil
}

// Update uploads the whole Src part of the cursor surface, damage is
// ignored.
func (p *CursorPlane) Update(topo Topology, s *State, damage []image.Rectangle) error {
	if !s.Bound() {
		return nil
	}
	ctrl, ok, err := p.dev.resolve(topo, s.Pipeline)
	if !ok {
		return err
	}
	if err = p.Upload(ctrl, s.FB.SubImage(s.Src)); err != nil {
		return err
	}
	return p.SetPosition(ctrl, s.Dst.Min.X, s.Dst.Min.Y)
}

func (p *CursorPlane) Disable(topo Topology, old *State) {
	if old == nil || old.Pipeline == NoPipeline {
		debug.Logger().Debug("display: cursor plane not enabled")
		return
	}
	ctrl, ok, _ := p.dev.resolve(topo, old.Pipeline)
	if !ok {
		return
	}
	p.dev.engine.EnableCursor(ctrl, dc.CursorOff)
}
