// Package display updates the primary and cursor planes of a SiliconMotion
// display adapter.
//
// The host display framework owns modesetting. It passes the current
// binding of output slots to pipelines as a Topology value into every call,
// so nothing here caches which controller backs which pipeline.
package display

import (
	"errors"
	"fmt"

	"github.com/smifb/smifb/cursor"
	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/dc"
	"github.com/smifb/smifb/hw/mmio"
	"github.com/smifb/smifb/hw/vram"
)

var (
	ErrInvalidGeometry      = cursor.ErrInvalidGeometry
	ErrUnknownTopology      = chip.ErrUnknownTopology
	ErrVRAMTooSmall         = vram.ErrVRAMTooSmall
	ErrUnresolvedController = errors.New("display: pipeline not bound to any output")
	ErrInvalidRole          = errors.New("display: invalid plane role")
	ErrInvalidFormat        = errors.New("display: unsupported pixel format")
	ErrScaling              = errors.New("display: scaling not supported")
)

// Pipeline identifies an output pipeline of the host framework.
type Pipeline int

// NoPipeline marks an unbound output slot or plane.
const NoPipeline Pipeline = 0

// Topology is a snapshot of the output configuration.
type Topology struct {
	// Outputs holds the pipeline bound to each output slot. Slots beyond
	// the chip's output count are ignored.
	Outputs [chip.MaxOutputs]Pipeline

	// Connectors that are currently active.
	Connectors chip.ConnectorMask
}

// Device is one display adapter.
type Device struct {
	chip   *chip.Chip
	arena  *vram.Arena
	engine dc.Engine
}

// NewDevice returns the device of variant v with device memory vram and
// registers on regs.
func NewDevice(v chip.Variant, mem []byte, regs mmio.Bus) (*Device, error) {
	c, err := chip.Lookup(v)
	if err != nil {
		return nil, err
	}
	arena, err := vram.NewArena(c, mem)
	if err != nil {
		return nil, err
	}
	engine, err := dc.New(c, regs)
	if err != nil {
		return nil, err
	}
	return &Device{chip: c, arena: arena, engine: engine}, nil
}

func (d *Device) Chip() *chip.Chip { return d.chip }

func (d *Device) Arena() *vram.Arena { return d.arena }

// Resolve returns the controller that scans out pipeline p. The first output
// slot bound to p decides: slots with a controller of their own map to it
// directly, the remaining slots share a controller chosen from the active
// connectors.
func (d *Device) Resolve(topo Topology, p Pipeline) (int, error) {
	if p != NoPipeline {
		for slot := range d.chip.Outputs {
			if topo.Outputs[slot] != p {
				continue
			}
			if slot < d.chip.Controllers {
				return slot, nil
			}
			return d.chip.SharedPath(topo.Connectors)
		}
	}
	return 0, fmt.Errorf("%w: pipeline %d", ErrUnresolvedController, p)
}

// BaseOffset returns the device memory offset of the partition of
// controller ctrl.
func (d *Device) BaseOffset(ctrl int) (int, error) {
	return d.arena.Base(ctrl)
}

// resolve is Resolve for planes that the caller claims are bound. A pipeline
// without an output is a caller bug: it panics in debug builds, otherwise ok
// is false and the plane operation is skipped.
func (d *Device) resolve(topo Topology, p Pipeline) (ctrl int, ok bool, err error) {
	ctrl, err = d.Resolve(topo, p)
	if errors.Is(err, ErrUnresolvedController) {
		debug.AssertErrNil(err)
		debug.Logger().Warn("display: update of unbound plane skipped", "pipeline", p)
		return 0, false, nil
	}
	return ctrl, err == nil, err
}
