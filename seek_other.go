//go:build !linux && !darwin

package sparsemap

import "os"

// SEEK_DATA/SEEK_HOLE and the ENXIO end-of-region convention are not
// portable beyond the unixes this package targets. Windows has its own
// sparse-range interface (FSCTL_QUERY_ALLOCATED_RANGES), which is not
// implemented yet; report ErrUnsupported rather than pretending with a
// plain seek.

func LseekTo(f *os.File, to uint64) (off uint64, eof bool, err error) {
	return 0, false, ErrUnsupported
}

func SeekData(f *os.File, from uint64) (off uint64, eof bool, err error) {
	return 0, false, ErrUnsupported
}

func SeekHole(f *os.File, from uint64) (off uint64, eof bool, err error) {
	return 0, false, ErrUnsupported
}
