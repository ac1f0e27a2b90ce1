package display

import (
	"fmt"
	"image"

	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/vram"
)

// Role is the kind of a plane.
type Role uint8

const (
	Primary Role = iota
	Cursor
)

func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Cursor:
		return "cursor"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// State is the framework's view of a plane for one update.
type State struct {
	// Pipeline the plane is attached to, NoPipeline if disabled.
	Pipeline Pipeline

	FB *framebuffer.Surface

	// Src is the part of FB shown, in FB coordinates.
	Src image.Rectangle

	// Dst is where Src appears on the output. Its origin may be negative
	// for cursors partially off screen.
	Dst image.Rectangle
}

// Bound reports whether s is attached to a pipeline and has a surface.
func (s *State) Bound() bool {
	return s != nil && s.Pipeline != NoPipeline && s.FB != nil
}

// Visible reports whether s covers any part of the output.
func (s *State) Visible() bool {
	return s.Bound() && !s.Dst.Empty()
}

// Plane is a primary or cursor plane. Updates of a plane must not run
// concurrently. Planes of different controllers write disjoint device memory
// and may be updated in parallel.
type Plane interface {
	Role() Role

	// Check validates a new state before it is committed.
	Check(topo Topology, s *State) error

	// Update makes s visible. damage lists the rectangles of s.FB that
	// changed since the previous update. If s.Pipeline is not bound to any
	// output in topo the update is skipped and nil returned.
	Update(topo Topology, s *State, damage []image.Rectangle) error

	// Disable turns off the plane, old is the state it was in.
	Disable(topo Topology, old *State)

	// Region returns the device memory the plane wrote last.
	Region() vram.Region
}

// NewPlane returns a plane of the given role on d.
func NewPlane(d *Device, role Role) (Plane, error) {
	switch role {
	case Primary:
		return NewPrimaryPlane(d), nil
	case Cursor:
		return NewCursorPlane(d), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidRole, role)
}
