package cursor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/chip"
)

func filledCanvas(b, a uint8) []byte {
	var c Canvas
	for i := 0; i < len(c); i += 4 {
		c[i], c[i+3] = b, a
	}
	return c[:]
}

func TestToLegacy(t *testing.T) {
	tests := map[string]struct {
		src      []byte
		expected byte
	}{
		"opaqueBlack":  {filledCanvas(0x00, 0xff), 0x55},
		"opaqueWhite":  {filledCanvas(0xff, 0xff), 0xaa},
		"transparent":  {filledCanvas(0xff, 0x00), 0x00},
		"belowAlpha":   {filledCanvas(0x00, 0xdf), 0x00},
		"atAlpha":      {filledCanvas(0x00, 0xe0), 0x55},
		"belowBlue":    {filledCanvas(0x7f, 0xff), 0x55},
		"atBlue":       {filledCanvas(0x80, 0xff), 0xaa},
		"zeroedCanvas": {make([]byte, ARGBBytes), 0x00},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ToLegacy(nil, tc.src)
			if len(got) != 1024 {
				t.Fatalf("expected 1024 bytes, got %d", len(got))
			}
			if !bytes.Equal(got, bytes.Repeat([]byte{tc.expected}, 1024)) {
				t.Fatalf("expected all bytes %#02x, got %x...", tc.expected, got[:8])
			}
		})
	}
}

func TestToLegacyBitOrder(t *testing.T) {
	src := make([]byte, ARGBBytes)
	// first byte: transparent, dark, light, dark
	copy(src[4:], []byte{0x00, 0, 0, 0xff})
	copy(src[8:], []byte{0xff, 0, 0, 0xff})
	copy(src[12:], []byte{0x10, 0, 0, 0xff})
	// last pixel: light
	copy(src[ARGBBytes-4:], []byte{0xc0, 0, 0, 0xf0})

	got := ToLegacy(make([]byte, 0, LegacyBytes), src)
	if got[0] != 0b01_10_01_00 {
		t.Errorf("first byte: got %08b", got[0])
	}
	if got[LegacyBytes-1] != 0b10_00_00_00 {
		t.Errorf("last byte: got %08b", got[LegacyBytes-1])
	}
	for i := 1; i < LegacyBytes-1; i++ {
		if got[i] != 0 {
			t.Fatalf("byte %d: got %08b", i, got[i])
		}
	}
}

func TestToLegacyReusesDst(t *testing.T) {
	dst := make([]byte, 2*LegacyBytes)
	got := ToLegacy(dst, filledCanvas(0, 0xff))
	if &got[0] != &dst[0] {
		t.Fatal("dst not reused")
	}
}

func TestDecode(t *testing.T) {
	palette := [3]color.Color{color.Black, color.White, color.RGBA{0, 0, 0xff, 0xff}}
	src := make([]byte, ARGBBytes)
	copy(src[4:], []byte{0x00, 0, 0, 0xff})
	copy(src[8:], []byte{0xff, 0, 0, 0xff})

	img := Decode(ToLegacy(nil, src), palette)
	tests := map[image.Point]color.Color{
		{0, 0}: color.Transparent,
		{1, 0}: color.Black,
		{2, 0}: color.White,
		{3, 0}: color.Transparent,
		{0, 1}: color.Transparent,
	}
	for p, expected := range tests {
		r0, g0, b0, a0 := img.At(p.X, p.Y).RGBA()
		r1, g1, b1, a1 := expected.RGBA()
		if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
			t.Errorf("%v: expected %v, got %v", p, expected, img.At(p.X, p.Y))
		}
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		w, h int
		err  error
	}{
		"max":      {64, 64, nil},
		"small":    {16, 32, nil},
		"empty":    {0, 0, nil},
		"wide":     {65, 64, ErrInvalidGeometry},
		"tall":     {64, 65, ErrInvalidGeometry},
		"negative": {-1, 1, ErrInvalidGeometry},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if err := Validate(tc.w, tc.h); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestCanvasLoad(t *testing.T) {
	s := framebuffer.NewSurface(image.Rect(0, 0, 2, 3), framebuffer.ARGB8888)
	s.Set(1, 2, color.RGBA{0x10, 0x20, 0x30, 0xff})

	var c Canvas
	for i := range c {
		c[i] = 0xee
	}
	if err := c.Load(s); err != nil {
		t.Fatal(err)
	}
	i := 2*4*Width + 4
	if !bytes.Equal(c[i:i+4], []byte{0x30, 0x20, 0x10, 0xff}) {
		t.Fatalf("pixel (1,2): got %x", c[i:i+4])
	}
	c[i], c[i+1], c[i+2], c[i+3] = 0, 0, 0, 0
	if !bytes.Equal(c[:], make([]byte, ARGBBytes)) {
		t.Fatal("canvas not transparent outside of image")
	}
}

func TestCanvasLoadRGB565(t *testing.T) {
	s := framebuffer.NewSurface(image.Rect(0, 0, 4, 4), framebuffer.RGB565)
	s.Set(0, 0, color.White)

	var c Canvas
	if err := c.Load(s); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c[:4], []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("white pixel: got %x", c[:4])
	}
	if !bytes.Equal(c[4:8], []byte{0, 0, 0, 0xff}) {
		t.Fatalf("black pixel must be opaque: got %x", c[4:8])
	}
	if c[4*4+3] != 0 {
		t.Fatal("padding not transparent")
	}
}

func TestCanvasLoadErrors(t *testing.T) {
	tests := map[string]struct {
		s   *framebuffer.Surface
		err error
	}{
		"tooWide":   {framebuffer.NewSurface(image.Rect(0, 0, 65, 64), framebuffer.ARGB8888), ErrInvalidGeometry},
		"rgb888":    {framebuffer.NewSurface(image.Rect(0, 0, 8, 8), framebuffer.RGB888), ErrFormat},
		"xrgb8888":  {framebuffer.NewSurface(image.Rect(0, 0, 8, 8), framebuffer.XRGB8888), ErrFormat},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var c Canvas
			if err := c.Load(tc.s); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	s := framebuffer.NewSurface(image.Rect(0, 0, 64, 64), framebuffer.ARGB8888)
	for i := 0; i < len(s.Pix); i += 4 {
		s.Pix[i+3] = 0xff
	}

	legacy, err := Encode(chip.Legacy2bpp, s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(legacy, bytes.Repeat([]byte{0x55}, LegacyBytes)) {
		t.Fatal("opaque black image not encoded as color A")
	}

	argb, err := Encode(chip.ARGB8888, s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(argb, s.Pix) {
		t.Fatal("full size ARGB image not passed through")
	}

	if _, err := Encode(chip.CursorFormat(9), s); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
