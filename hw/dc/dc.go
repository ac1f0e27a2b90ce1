// Package dc programs the display controllers: scanout base address and
// pitch, and the hardware cursor.
//
// Register writes are posted. The hardware latches base and cursor registers
// at the next vertical blank, nothing here waits for it.
package dc

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/mmio"
)

// Engine is the register interface of a chip's display controllers.
type Engine interface {
	// SetBase sets the scanout start to byte offset in device memory and
	// the distance between lines to pitch bytes.
	SetBase(ctrl int, pitch, offset uint32)

	// InitCursor points the cursor engine at the image at offset and sets
	// the color keys used by 2bpp cursors.
	InitCursor(ctrl int, offset uint32, colors Colors)

	EnableCursor(ctrl int, mode CursorMode)
	SetCursorPosition(ctrl int, pos Position)
}

type CursorMode uint32

const (
	CursorOff  CursorMode = 0
	CursorMono CursorMode = 1 // 2bpp, colors from the color key registers
	CursorARGB CursorMode = 3 // 32bpp with alpha
)

// Colors are the color keys of the three opaque symbols of a 2bpp cursor.
type Colors struct {
	Background color.Color // symbol 1
	Foreground color.Color // symbol 2
	Border     color.Color // symbol 3
}

// DefaultColors are the color keys programmed for every cursor.
var DefaultColors = Colors{
	Background: colornames.Black,
	Foreground: colornames.White,
	Border:     colornames.Blue,
}

// ModeFor returns the cursor mode matching the chip's cursor format.
func ModeFor(c *chip.Chip) CursorMode {
	if c.CursorFormat == chip.Legacy2bpp {
		return CursorMono
	}
	return CursorARGB
}

// New returns the Engine of chip c with registers on bus.
func New(c *chip.Chip, bus mmio.Bus) (Engine, error) {
	switch c.Variant {
	case chip.SM750:
		return newSM750(bus), nil
	case chip.SM768:
		return newSM768(bus), nil
	}
	return nil, fmt.Errorf("%w: no register layout for %v", chip.ErrUnknownTopology, c)
}

// RGB565 packs c into the 16 bit color key format.
func RGB565(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>11)<<11 | (g>>10)<<5 | b>>11
}

// RGB888 packs c into the 32 bit color key format.
func RGB888(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}
