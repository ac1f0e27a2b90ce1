package display

import (
	"image"

	"github.com/embeddedgo/display/pix"

	"github.com/smifb/smifb/framebuffer"
)

// Screen is a shadow framebuffer shown on the primary plane of one
// pipeline. Drawing happens in system memory; each flush copies the damaged
// parts to device memory.
type Screen struct {
	fb    *framebuffer.Framebuffer
	plane *PrimaryPlane
	topo  Topology
	state State
}

// NewScreen allocates a size.X×size.Y surface of format f and binds it to
// pipeline p.
func NewScreen(d *Device, topo Topology, p Pipeline, size image.Point, f framebuffer.Format) (*Screen, error) {
	bounds := image.Rectangle{Max: size}
	s := &Screen{
		plane: NewPrimaryPlane(d),
		topo:  topo,
		state: State{
			Pipeline: p,
			FB:       framebuffer.NewSurface(bounds, f),
			Src:      bounds,
			Dst:      bounds,
		},
	}
	if err := s.plane.Check(topo, &s.state); err != nil {
		return nil, err
	}
	s.fb = framebuffer.NewFramebuffer(s.state.FB, s.flush)
	return s, nil
}

func (s *Screen) flush(_ *framebuffer.Surface, damage []image.Rectangle) error {
	return s.plane.Update(s.topo, &s.state, damage)
}

// SetTopology replaces the output configuration used by the next flush and
// marks the whole surface as damaged.
func (s *Screen) SetTopology(topo Topology) {
	s.topo = topo
	s.fb.Invalidate(s.fb.Bounds())
}

// Framebuffer returns the pix.Driver of the screen.
func (s *Screen) Framebuffer() *framebuffer.Framebuffer { return s.fb }

func (s *Screen) Plane() *PrimaryPlane { return s.plane }

// NewDisplay returns a pix.Display drawing to the screen.
func (s *Screen) NewDisplay() *pix.Display {
	return pix.NewDisplay(s.fb)
}

// Err returns the first error of a flush since the last call.
func (s *Screen) Err() error {
	return s.fb.Err(true)
}
