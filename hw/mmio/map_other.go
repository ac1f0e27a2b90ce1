//go:build !linux

package mmio

import "errors"

type Mapping struct {
	Memory
}

func Map(path string, size int) (*Mapping, error) {
	return nil, errors.ErrUnsupported
}

func (m *Mapping) Close() error { return nil }
