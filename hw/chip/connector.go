package chip

import (
	"fmt"
	"strings"
)

// ConnectorMask has a bit set for every logical connector that is currently
// active.
type ConnectorMask uint8

const (
	DVI ConnectorMask = 1 << iota
	VGA
	HDMI

	AllConnectors = DVI | VGA | HDMI
)

func (m ConnectorMask) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, c := range []struct {
		bit  ConnectorMask
		name string
	}{{DVI, "DVI"}, {VGA, "VGA"}, {HDMI, "HDMI"}} {
		if m&c.bit != 0 {
			names = append(names, c.name)
		}
	}
	if m&^AllConnectors != 0 {
		names = append(names, fmt.Sprintf("%#x", uint8(m&^AllConnectors)))
	}
	return strings.Join(names, "|")
}

// The HDMI encoder of the SM768 has no controller of its own. It is wired
// to whichever controller the other active connectors leave free. DVI is
// driven by controller 0 and VGA by controller 1; with all three active HDMI
// mirrors the VGA controller. This is board wiring, keep the table as is.
var sm768SharedPath = map[ConnectorMask]int{
	HDMI:             0,
	DVI | HDMI:       1,
	VGA | HDMI:       0,
	DVI | VGA | HDMI: 1,
}

// SharedPath returns the controller that carries an output without a
// dedicated controller, given the set of active connectors.
func (c *Chip) SharedPath(active ConnectorMask) (int, error) {
	ctrl, ok := c.sharedPath[active]
	if !ok {
		return 0, fmt.Errorf("%w: %v has no shared path for connectors %v",
			ErrUnknownTopology, c.Variant, active)
	}
	return ctrl, nil
}

// SharedPath is the variant keyed form of Chip.SharedPath.
func SharedPath(v Variant, active ConnectorMask) (int, error) {
	c, err := Lookup(v)
	if err != nil {
		return 0, err
	}
	return c.SharedPath(active)
}
