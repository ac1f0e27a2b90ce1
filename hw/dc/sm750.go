package dc

import (
	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/hw/mmio"
)

// The SM750 has a panel and a CRT controller with separate register blocks.
// Controller 0 is the panel.
const (
	panelFBAddress   = 0x08_000c
	panelFBWidth     = 0x08_0010
	panelHWCAddress  = 0x08_00f0
	panelHWCLocation = 0x08_00f4
	panelHWCColor12  = 0x08_00f8
	panelHWCColor3   = 0x08_00fc

	crtFBAddress   = 0x08_0204
	crtFBWidth     = 0x08_0208
	crtHWCAddress  = 0x08_0230
	crtHWCLocation = 0x08_0234
	crtHWCColor12  = 0x08_0238
	crtHWCColor3   = 0x08_023c
)

type fbAddress uint32

const (
	fbAddressMask    fbAddress = 0x03ff_ffff
	fbAddressPending fbAddress = 1 << 31
)

type fbWidth uint32

// The offset field holds the pitch in bytes.
const sm750FBOffsetMask fbWidth = 0x3fff

type hwcAddress uint32

const (
	hwcAddressMask   hwcAddress = 0x03ff_ffff
	hwcAddressEnable hwcAddress = 1 << 31
)

type sm750Regs struct {
	fbAddress   mmio.R32[fbAddress]
	fbWidth     mmio.R32[fbWidth]
	hwcAddress  mmio.R32[hwcAddress]
	hwcLocation mmio.R32[uint32]
	hwcColor12  mmio.R32[uint32]
	hwcColor3   mmio.R32[uint32]
}

type sm750 struct {
	ctrl [2]sm750Regs
}

func newSM750(bus mmio.Bus) *sm750 {
	return &sm750{ctrl: [2]sm750Regs{{
		fbAddress:   mmio.NewR32[fbAddress](bus, panelFBAddress),
		fbWidth:     mmio.NewR32[fbWidth](bus, panelFBWidth),
		hwcAddress:  mmio.NewR32[hwcAddress](bus, panelHWCAddress),
		hwcLocation: mmio.NewR32[uint32](bus, panelHWCLocation),
		hwcColor12:  mmio.NewR32[uint32](bus, panelHWCColor12),
		hwcColor3:   mmio.NewR32[uint32](bus, panelHWCColor3),
	}, {
		fbAddress:   mmio.NewR32[fbAddress](bus, crtFBAddress),
		fbWidth:     mmio.NewR32[fbWidth](bus, crtFBWidth),
		hwcAddress:  mmio.NewR32[hwcAddress](bus, crtHWCAddress),
		hwcLocation: mmio.NewR32[uint32](bus, crtHWCLocation),
		hwcColor12:  mmio.NewR32[uint32](bus, crtHWCColor12),
		hwcColor3:   mmio.NewR32[uint32](bus, crtHWCColor3),
	}}}
}

func (e *sm750) regs(ctrl int) *sm750Regs {
	debug.Assert(ctrl >= 0 && ctrl < len(e.ctrl), "dc: invalid SM750 controller")
	return &e.ctrl[ctrl&1]
}

func (e *sm750) SetBase(ctrl int, pitch, offset uint32) {
	debug.Assert(pitch <= uint32(sm750FBOffsetMask), "dc: SM750 pitch out of range")
	r := e.regs(ctrl)
	r.fbWidth.StoreBits(sm750FBOffsetMask, fbWidth(pitch))
	r.fbAddress.Store(fbAddress(offset)&fbAddressMask | fbAddressPending)
}

func (e *sm750) InitCursor(ctrl int, offset uint32, colors Colors) {
	r := e.regs(ctrl)
	r.hwcAddress.StoreBits(hwcAddressMask, hwcAddress(offset))
	r.hwcColor12.Store(RGB565(colors.Foreground)<<16 | RGB565(colors.Background))
	r.hwcColor3.Store(RGB565(colors.Border))
}

func (e *sm750) EnableCursor(ctrl int, mode CursorMode) {
	r := e.regs(ctrl)
	if mode == CursorOff {
		r.hwcAddress.ClearBits(hwcAddressEnable)
		return
	}
	debug.Assert(mode == CursorMono, "dc: SM750 only supports 2bpp cursors")
	r.hwcAddress.SetBits(hwcAddressEnable)
}

func (e *sm750) SetCursorPosition(ctrl int, pos Position) {
	e.regs(ctrl).hwcLocation.Store(pos.location())
}
