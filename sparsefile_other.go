//go:build !linux

package sparsemap

import "os"

// Hole punching is fallocate(2) on Linux. Darwin has fcntl F_PUNCHHOLE
// and Windows FSCTL_SET_ZERO_DATA, neither implemented here yet.
func PunchHole(f *os.File, offset, length int64) error {
	return ErrUnsupported
}
