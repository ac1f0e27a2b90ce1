package dc

// Position is a cursor location as the location registers store it: an
// unsigned magnitude and a sign flag per axis.
type Position struct {
	X, Y uint16
	Left bool // X is negative
	Top  bool // Y is negative
}

const (
	locationMagnitude = 0x7ff
	locationLeft      = 1 << 11
	locationYShift    = 16
	locationTop       = 1 << 27
)

// EncodePosition converts signed coordinates into a Position. Magnitudes are
// limited to the width of the location fields.
func EncodePosition(x, y int) Position {
	var p Position
	if x < 0 {
		x, p.Left = -x, true
	}
	if y < 0 {
		y, p.Top = -y, true
	}
	p.X = uint16(min(x, locationMagnitude))
	p.Y = uint16(min(y, locationMagnitude))
	return p
}

// Coords returns the signed coordinates of p.
func (p Position) Coords() (x, y int) {
	x, y = int(p.X), int(p.Y)
	if p.Left {
		x = -x
	}
	if p.Top {
		y = -y
	}
	return
}

func (p Position) location() uint32 {
	v := uint32(p.X)&locationMagnitude | (uint32(p.Y)&locationMagnitude)<<locationYShift
	if p.Left {
		v |= locationLeft
	}
	if p.Top {
		v |= locationTop
	}
	return v
}
