//go:build !linux

package sparsemap

import "os"

// fiemap is a Linux-only interface. Other platforms report
// ErrUnsupported so callers take their documented fallback path
// (the seek prober, or one opaque extent).

func QuickExtents(f *os.File) (extents []Extent, more bool, err error) {
	return nil, false, ErrUnsupported
}

func ExtentsInRange(f *os.File, start, length uint64) ([]Extent, error) {
	return nil, ErrUnsupported
}

func AllExtents(f *os.File) ([]Extent, error) {
	return nil, ErrUnsupported
}
