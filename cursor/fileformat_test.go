package cursor

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/smifb/smifb/hw/chip"
)

func TestBlobStoreLoad(t *testing.T) {
	for _, f := range []chip.CursorFormat{chip.Legacy2bpp, chip.ARGB8888} {
		data := make([]byte, Size(f))
		for i := range data {
			data[i] = byte(i * 7)
		}
		b := &Blob{Format: f, Width: 32, Height: 48, Data: data}

		var buf bytes.Buffer
		if err := b.Store(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 8+len(data)+1 {
			t.Fatalf("%v: blob of %d bytes", f, buf.Len())
		}

		got, err := Load(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if got.Format != f || got.Width != 32 || got.Height != 48 || !bytes.Equal(got.Data, data) {
			t.Fatalf("%v: loaded %+v", f, got)
		}
	}
}

func TestBlobLoadErrors(t *testing.T) {
	var buf bytes.Buffer
	b := &Blob{Format: chip.Legacy2bpp, Width: 64, Height: 64, Data: make([]byte, LegacyBytes)}
	if err := b.Store(&buf); err != nil {
		t.Fatal(err)
	}
	valid := buf.Bytes()

	corrupt := func(i int, mask byte) []byte {
		data := bytes.Clone(valid)
		data[i] ^= mask
		return data
	}

	tests := map[string]struct {
		data []byte
		err  error
	}{
		"data":      {corrupt(100, 0x01), ErrChecksum},
		"checksum":  {corrupt(len(valid)-1, 0x01), ErrChecksum},
		"magic":     {corrupt(0, 0x01), ErrFormat},
		"format":    {corrupt(4, 0x02), ErrFormat},
		"geometry":  {corrupt(5, 0x01), ErrInvalidGeometry},
		"truncated": {valid[:len(valid)-1], io.EOF},
		"empty":     {nil, io.EOF},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(bytes.NewReader(tc.data))
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestBlobStoreErrors(t *testing.T) {
	tests := map[string]*Blob{
		"shortData": {Format: chip.ARGB8888, Width: 64, Height: 64, Data: make([]byte, LegacyBytes)},
		"tooLarge":  {Format: chip.Legacy2bpp, Width: 128, Height: 64, Data: make([]byte, LegacyBytes)},
	}
	for name, b := range tests {
		if err := b.Store(io.Discard); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
