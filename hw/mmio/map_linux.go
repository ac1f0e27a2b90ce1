//go:build linux

package mmio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapping is a memory mapped file, usually a PCI BAR exposed by sysfs, e.g.
// /sys/bus/pci/devices/0000:01:00.0/resource0.
type Mapping struct {
	Memory
}

// Map maps size bytes of the file at path for reading and writing. A size of
// zero maps the whole file.
func Map(path string, size int) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if size == 0 {
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		size = int(fi.Size())
	}
	if size <= 0 {
		return nil, fmt.Errorf("mmio: %s: nothing to map", path)
	}

	b, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmio: mmap %s: %w", path, err)
	}
	return &Mapping{Memory(b)}, nil
}

// Close unmaps the memory. The Mapping must not be used afterwards.
func (m *Mapping) Close() error {
	if m.Memory == nil {
		return nil
	}
	err := unix.Munmap(m.Memory)
	m.Memory = nil
	return err
}
