// Package chip describes the members of the SiliconMotion display chip family
// supported by this module.
//
// Every difference between the chips that matters to plane handling is
// captured in a Chip capability set. It is looked up once per device and
// passed around instead of branching on the variant at each call site.
package chip

import (
	"errors"
	"fmt"
	"strings"
)

// Variant identifies a chip of the family.
type Variant uint8

const (
	SM750 Variant = iota
	SM768

	variantLast
)

func (v Variant) String() string {
	switch v {
	case SM750:
		return "SM750"
	case SM768:
		return "SM768"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant returns the variant named s, e.g. "SM768".
func ParseVariant(s string) (Variant, error) {
	for v := range variantLast {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown chip %q", ErrUnknownTopology, s)
}

// CursorFormat is the pixel format the hardware cursor engine reads.
type CursorFormat uint8

const (
	// Legacy2bpp packs four pixels per byte, see cursor.ToLegacy.
	Legacy2bpp CursorFormat = iota
	// ARGB8888 is read directly from the source surface format.
	ARGB8888
)

func (f CursorFormat) String() string {
	switch f {
	case Legacy2bpp:
		return "2bpp"
	case ARGB8888:
		return "ARGB8888"
	}
	return fmt.Sprintf("CursorFormat(%d)", uint8(f))
}

const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// Size of the memory partition reserved for each display controller.
const (
	SM750PartitionSize = 8 * MiB
	SM768PartitionSize = 32 * MiB
)

// Hardware cursor geometry, identical on all chips. Cursor storage is
// always reserved for a 32bpp image even if the chip reads less of it.
const (
	CursorWidth  = 64
	CursorHeight = 64
	CursorBytes  = 4 * CursorWidth * CursorHeight
)

const (
	MaxFBWidth  = 8192
	MaxFBHeight = 8192
)

// Largest line pitch in bytes the framebuffer width registers can hold.
const (
	SM750MaxPitch = 0x3fff
	SM768MaxPitch = 0x7fff
)

// MaxControllers is the number of display controllers on every chip.
const MaxControllers = 2

// MaxOutputs is the largest number of output slots of any chip.
const MaxOutputs = 3

var ErrUnknownTopology = errors.New("chip: unknown topology")

// Chip is the capability set of one variant.
type Chip struct {
	Variant Variant

	// PartitionSize is the number of bytes reserved for each controller.
	PartitionSize int

	// Controllers is the number of independent scanout engines.
	Controllers int

	// MaxPitch is the largest scanout pitch in bytes.
	MaxPitch int

	// Outputs is the number of output slots that can be bound to a
	// pipeline. Slots at index Controllers and above don't own a
	// controller and are routed through SharedPath.
	Outputs int

	CursorFormat CursorFormat

	// Bytes per pixel of the cursor color key registers.
	CursorColorBytes int

	sharedPath map[ConnectorMask]int
}

var chips = [variantLast]Chip{
	SM750: {
		Variant:          SM750,
		PartitionSize:    SM750PartitionSize,
		MaxPitch:         SM750MaxPitch,
		Controllers:      2,
		Outputs:          2,
		CursorFormat:     Legacy2bpp,
		CursorColorBytes: 2,
	},
	SM768: {
		Variant:          SM768,
		PartitionSize:    SM768PartitionSize,
		MaxPitch:         SM768MaxPitch,
		Controllers:      2,
		Outputs:          3,
		CursorFormat:     ARGB8888,
		CursorColorBytes: 4,
		sharedPath:       sm768SharedPath,
	},
}

// Lookup returns the capability set of v.
func Lookup(v Variant) (*Chip, error) {
	if v >= variantLast {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTopology, v)
	}
	return &chips[v], nil
}

// PartitionSize returns the size of the memory partition of controller ctrl
// on variant v. It reports false if v or ctrl is out of range.
func PartitionSize(v Variant, ctrl int) (int, bool) {
	c, err := Lookup(v)
	if err != nil || ctrl < 0 || ctrl >= c.Controllers {
		return 0, false
	}
	return c.PartitionSize, true
}

// String implements fmt.Stringer.
func (c *Chip) String() string { return c.Variant.String() }

// ValidController reports whether ctrl names a controller of c.
func (c *Chip) ValidController(ctrl int) bool {
	return ctrl >= 0 && ctrl < c.Controllers
}
