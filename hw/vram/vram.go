// Package vram partitions the device memory aperture between the display
// controllers.
//
// Each controller owns one fixed size partition. The primary surface starts
// at the beginning of the partition and the cursor image occupies its last
// chip.CursorBytes bytes:
//
//	 0                                 PartitionSize
//	 |---------- primary --------------|- cursor -|   controller 0
//	 |---------- primary --------------|- cursor -|   controller 1
//
// All offset arithmetic lives here, so that regions of different controllers
// provably never overlap.
package vram

import (
	"errors"
	"fmt"

	"github.com/smifb/smifb/hw/chip"
)

var (
	ErrVRAMTooSmall = errors.New("vram: aperture smaller than partition table")
	ErrOutOfRange   = errors.New("vram: access outside of region")
)

// Region is a non-owning window into the arena.
type Region struct {
	Off, Len int
}

// End returns the offset of the first byte after r.
func (r Region) End() int { return r.Off + r.Len }

// Overlaps reports whether r and s share at least one byte.
func (r Region) Overlaps(s Region) bool {
	return r.Len > 0 && s.Len > 0 && r.Off < s.End() && s.Off < r.End()
}

// Contains reports whether [off, off+n) lies within r.
func (r Region) Contains(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= r.Len
}

func (r Region) String() string {
	return fmt.Sprintf("[%#08x, %#08x)", r.Off, r.End())
}

// Arena is the device memory of one adapter.
type Arena struct {
	mem  []byte
	chip *chip.Chip
}

// NewArena returns an arena over mem. mem must be large enough to hold the
// partitions of every controller of c.
func NewArena(c *chip.Chip, mem []byte) (*Arena, error) {
	if need := c.Controllers * c.PartitionSize; len(mem) < need {
		return nil, fmt.Errorf("%w: %v needs %d MiB, have %d MiB",
			ErrVRAMTooSmall, c, need/chip.MiB, len(mem)/chip.MiB)
	}
	return &Arena{mem: mem, chip: c}, nil
}

func (a *Arena) Size() int { return len(a.mem) }

// Base returns the offset of the partition of controller ctrl.
func (a *Arena) Base(ctrl int) (int, error) {
	if !a.chip.ValidController(ctrl) {
		return 0, fmt.Errorf("%w: %v has no controller %d", chip.ErrUnknownTopology, a.chip, ctrl)
	}
	if ctrl == 0 {
		return 0, nil
	}
	return ctrl * a.chip.PartitionSize, nil
}

// Partition returns the whole partition of controller ctrl.
func (a *Arena) Partition(ctrl int) (Region, error) {
	base, err := a.Base(ctrl)
	if err != nil {
		return Region{}, err
	}
	return Region{base, a.chip.PartitionSize}, nil
}

// Primary returns the part of the partition available to the primary plane.
func (a *Arena) Primary(ctrl int) (Region, error) {
	r, err := a.Partition(ctrl)
	if err != nil {
		return Region{}, err
	}
	r.Len -= chip.CursorBytes
	return r, nil
}

// Cursor returns the cursor storage at the end of the partition.
func (a *Arena) Cursor(ctrl int) (Region, error) {
	r, err := a.Partition(ctrl)
	if err != nil {
		return Region{}, err
	}
	return Region{r.End() - chip.CursorBytes, chip.CursorBytes}, nil
}

// Partition is the layout of one controller's partition.
type Partition struct {
	Ctrl    int
	Primary Region
	Cursor  Region
}

// Layout returns the partition table of c without any device memory.
func Layout(c *chip.Chip) []Partition {
	a := &Arena{chip: c}
	parts := make([]Partition, c.Controllers)
	for ctrl := range parts {
		p := &parts[ctrl]
		p.Ctrl = ctrl
		p.Primary, _ = a.Primary(ctrl)
		p.Cursor, _ = a.Cursor(ctrl)
	}
	return parts
}

// Bytes returns the memory of r.
func (a *Arena) Bytes(r Region) []byte {
	return a.mem[r.Off:r.End():r.End()]
}

// WriteAt copies p to offset off within r.
func (a *Arena) WriteAt(r Region, p []byte, off int) error {
	if !r.Contains(off, len(p)) {
		return fmt.Errorf("%w: %d bytes at %#x in %v", ErrOutOfRange, len(p), off, r)
	}
	copy(a.Bytes(r)[off:], p)
	return nil
}

// WriteRows copies rows of n bytes from src to r. Source rows are srcPitch
// bytes apart, destination rows start at off and are dstPitch bytes apart.
// Nothing is written unless all rows fit into r.
func (a *Arena) WriteRows(r Region, off, dstPitch int, src []byte, srcPitch, n, rows int) error {
	if rows <= 0 || n <= 0 {
		return nil
	}
	last := off + (rows-1)*dstPitch
	if n > dstPitch || !r.Contains(off, 0) || !r.Contains(last, n) {
		return fmt.Errorf("%w: %d rows of %d bytes at %#x in %v", ErrOutOfRange, rows, n, off, r)
	}
	if len(src) < (rows-1)*srcPitch+n {
		return fmt.Errorf("%w: source holds %d bytes", ErrOutOfRange, len(src))
	}

	dst := a.Bytes(r)
	for y := 0; y < rows; y++ {
		copy(dst[off+y*dstPitch:off+y*dstPitch+n], src[y*srcPitch:y*srcPitch+n])
	}
	return nil
}
