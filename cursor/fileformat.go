package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sigurn/crc8"

	"github.com/smifb/smifb/hw/chip"
)

// A blob stores a converted cursor image:
//
//	header | image data | CRC-8 over header and data
//
// All header fields are big endian.
type header struct {
	Magic  [4]byte
	Format chip.CursorFormat
	Width  uint8
	Height uint8
	_      uint8
}

var magic = [4]byte{'S', 'M', 'C', 'R'}

var blobCRC8 = crc8.MakeTable(crc8.Params{Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Check: 0xF4, Name: "CRC-8"})

var ErrChecksum = errors.New("cursor: checksum mismatch")

// Blob is a cursor image ready to be copied to cursor storage.
type Blob struct {
	Format chip.CursorFormat

	// Size of the source image in pixels.
	Width, Height int

	Data []byte
}

// Load reads a blob written by Store.
func Load(r io.Reader) (*Blob, error) {
	var hdr header
	err := binary.Read(r, binary.BigEndian, &hdr)
	if err != nil {
		return nil, err
	}
	if hdr.Magic != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, hdr.Magic[:])
	}
	if hdr.Format != chip.Legacy2bpp && hdr.Format != chip.ARGB8888 {
		return nil, fmt.Errorf("%w: %v", ErrFormat, hdr.Format)
	}
	if err := Validate(int(hdr.Width), int(hdr.Height)); err != nil {
		return nil, err
	}

	b := &Blob{
		Format: hdr.Format,
		Width:  int(hdr.Width),
		Height: int(hdr.Height),
		Data:   make([]byte, Size(hdr.Format)),
	}
	if _, err = io.ReadFull(r, b.Data); err != nil {
		return nil, err
	}
	var csum [1]byte
	if _, err = io.ReadFull(r, csum[:]); err != nil {
		return nil, err
	}
	if csum[0] != b.checksum() {
		return nil, ErrChecksum
	}
	return b, nil
}

// Store writes b to w.
func (b *Blob) Store(w io.Writer) error {
	if len(b.Data) != Size(b.Format) {
		return fmt.Errorf("%w: %d bytes of data", ErrFormat, len(b.Data))
	}
	if err := Validate(b.Width, b.Height); err != nil {
		return err
	}

	err := binary.Write(w, binary.BigEndian, b.header())
	if err != nil {
		return err
	}
	if _, err = w.Write(b.Data); err != nil {
		return err
	}
	_, err = w.Write([]byte{b.checksum()})
	return err
}

func (b *Blob) header() header {
	return header{
		Magic:  magic,
		Format: b.Format,
		Width:  uint8(b.Width),
		Height: uint8(b.Height),
	}
}

func (b *Blob) checksum() byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, b.header())

	csum := crc8.Init(blobCRC8)
	csum = crc8.Update(csum, buf.Bytes(), blobCRC8)
	csum = crc8.Update(csum, b.Data, blobCRC8)
	return crc8.Complete(csum, blobCRC8)
}
