package mmio

import "testing"

func TestMemory(t *testing.T) {
	m := make(Memory, 16)
	m.Store32(4, 0xdead_beef)
	if got := m.Load32(4); got != 0xdead_beef {
		t.Fatalf("expected 0xdeadbeef, got %#x", got)
	}
	if m.Load32(0) != 0 || m.Load32(8) != 0 {
		t.Fatal("modified neighbouring registers")
	}
}

type flags uint32

func TestR32(t *testing.T) {
	m := make(Memory, 8)
	r := NewR32[flags](m, 4)

	r.Store(0xffff_0000)
	r.StoreBits(0x0000_ffff, 0x1234)
	if got := r.Load(); got != 0xffff_1234 {
		t.Fatalf("StoreBits: got %#x", got)
	}
	r.StoreBits(0xff00_0000, 0)
	if got := r.Load(); got != 0x00ff_1234 {
		t.Fatalf("StoreBits clear: got %#x", got)
	}
	r.SetBits(1 << 31)
	r.ClearBits(0x0000_0004)
	if got := r.Load(); got != 0x80ff_1230 {
		t.Fatalf("Set/ClearBits: got %#x", got)
	}
	if r.Offset() != 4 || m.Load32(0) != 0 {
		t.Fatal("wrong register accessed")
	}
}

func TestAlignUp(t *testing.T) {
	tests := map[string]struct{ v, align, expected int }{
		"zero":    {0, 16, 0},
		"one":     {1, 16, 16},
		"aligned": {2560, 16, 2560},
		"rgb888":  {1366 * 3, 16, 4112},
		"rgb565":  {1366 * 2, 16, 2736},
		"page":    {4097, 4096, 8192},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := AlignUp(tc.v, tc.align); got != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, got)
			}
			if !IsAligned(AlignUp(tc.v, tc.align), tc.align) {
				t.Fatal("result not aligned")
			}
		})
	}
}
