// Package mmio provides access to memory mapped device registers and
// apertures.
//
// Registers are always accessed with single 32 bit loads and stores. The
// same types back a mapped PCI BAR and a plain byte slice, so everything
// above this package runs unchanged against a simulated device in tests.
package mmio

import (
	"sync/atomic"
	"unsafe"

	"github.com/smifb/smifb/debug"
)

// Bus is a 32 bit register file addressed by byte offset.
type Bus interface {
	Load32(off uint32) uint32
	Store32(off uint32, v uint32)
}

// Memory is a Bus over a byte slice, e.g. a mapped BAR. Offsets must be 4
// byte aligned. Values use host byte order, which matches the little endian
// device on all supported hosts.
type Memory []byte

func (m Memory) word(off uint32) *uint32 {
	debug.Assert(off&3 == 0, "mmio: unaligned register access")
	return (*uint32)(unsafe.Pointer(&m[off : off+4][0]))
}

func (m Memory) Load32(off uint32) uint32 {
	return atomic.LoadUint32(m.word(off))
}

func (m Memory) Store32(off uint32, v uint32) {
	atomic.StoreUint32(m.word(off), v)
}

// R32 is a single 32 bit register with values of type T.
type R32[T ~uint32] struct {
	bus Bus
	off uint32
}

func NewR32[T ~uint32](bus Bus, off uint32) R32[T] {
	return R32[T]{bus, off}
}

func (r R32[T]) Offset() uint32 { return r.off }

func (r R32[T]) Load() T { return T(r.bus.Load32(r.off)) }

func (r R32[T]) Store(v T) { r.bus.Store32(r.off, uint32(v)) }

// StoreBits replaces the bits selected by mask with the bits of v.
func (r R32[T]) StoreBits(mask, v T) {
	r.Store(r.Load()&^mask | v&mask)
}

func (r R32[T]) SetBits(mask T) { r.Store(r.Load() | mask) }

func (r R32[T]) ClearBits(mask T) { r.Store(r.Load() &^ mask) }
