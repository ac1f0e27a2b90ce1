package dc

import (
	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/hw/mmio"
)

// The SM768 repeats one register block per display channel.
const (
	sm768Channel0      = 0x08_0000
	sm768ChannelStride = 0x00_8000

	sm768FBAddress   = 0x04
	sm768FBWidth     = 0x08
	sm768HWCControl  = 0x40
	sm768HWCAddress  = 0x44
	sm768HWCLocation = 0x48
	sm768HWCColor0   = 0x4c
	sm768HWCColor1   = 0x50
	sm768HWCColor2   = 0x54
)

const sm768FBOffsetMask fbWidth = 0x7fff

const sm768FBAddressMask fbAddress = 0x3fff_ffff

type hwcControl uint32

const hwcControlMode hwcControl = 0x3

type sm768Regs struct {
	fbAddress   mmio.R32[fbAddress]
	fbWidth     mmio.R32[fbWidth]
	hwcControl  mmio.R32[hwcControl]
	hwcAddress  mmio.R32[uint32]
	hwcLocation mmio.R32[uint32]
	hwcColor    [3]mmio.R32[uint32]
}

type sm768 struct {
	ctrl [2]sm768Regs
}

func newSM768(bus mmio.Bus) *sm768 {
	e := &sm768{}
	for i := range e.ctrl {
		base := uint32(sm768Channel0 + i*sm768ChannelStride)
		e.ctrl[i] = sm768Regs{
			fbAddress:   mmio.NewR32[fbAddress](bus, base+sm768FBAddress),
			fbWidth:     mmio.NewR32[fbWidth](bus, base+sm768FBWidth),
			hwcControl:  mmio.NewR32[hwcControl](bus, base+sm768HWCControl),
			hwcAddress:  mmio.NewR32[uint32](bus, base+sm768HWCAddress),
			hwcLocation: mmio.NewR32[uint32](bus, base+sm768HWCLocation),
			hwcColor: [3]mmio.R32[uint32]{
				mmio.NewR32[uint32](bus, base+sm768HWCColor0),
				mmio.NewR32[uint32](bus, base+sm768HWCColor1),
				mmio.NewR32[uint32](bus, base+sm768HWCColor2),
			},
		}
	}
	return e
}

func (e *sm768) regs(ctrl int) *sm768Regs {
	debug.Assert(ctrl >= 0 && ctrl < len(e.ctrl), "dc: invalid SM768 channel")
	return &e.ctrl[ctrl&1]
}

func (e *sm768) SetBase(ctrl int, pitch, offset uint32) {
	debug.Assert(pitch <= uint32(sm768FBOffsetMask), "dc: SM768 pitch out of range")
	r := e.regs(ctrl)
	r.fbWidth.StoreBits(sm768FBOffsetMask, fbWidth(pitch))
	r.fbAddress.Store(fbAddress(offset)&sm768FBAddressMask | fbAddressPending)
}

func (e *sm768) InitCursor(ctrl int, offset uint32, colors Colors) {
	r := e.regs(ctrl)
	r.hwcAddress.Store(offset)
	r.hwcColor[0].Store(RGB888(colors.Background))
	r.hwcColor[1].Store(RGB888(colors.Foreground))
	r.hwcColor[2].Store(RGB888(colors.Border))
}

func (e *sm768) EnableCursor(ctrl int, mode CursorMode) {
	e.regs(ctrl).hwcControl.StoreBits(hwcControlMode, hwcControl(mode))
}

func (e *sm768) SetCursorPosition(ctrl int, pos Position) {
	e.regs(ctrl).hwcLocation.Store(pos.location())
}
