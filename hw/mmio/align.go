package mmio

import (
	"golang.org/x/exp/constraints"

	"github.com/smifb/smifb/debug"
)

// AlignUp rounds v up to the next multiple of align, which must be a power
// of two.
func AlignUp[T constraints.Integer](v, align T) T {
	debug.Assert(align > 0 && align&(align-1) == 0, "mmio: alignment not a power of two")
	return (v + align - 1) &^ (align - 1)
}

// IsAligned reports whether v is a multiple of align.
func IsAligned[T constraints.Integer](v, align T) bool {
	return v&(align-1) == 0
}
