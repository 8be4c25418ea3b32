//go:build linux

package sparsemap

import (
	"os"

	"golang.org/x/sys/unix"
)

// PunchHole deallocates [offset, offset+length) of the file, turning it
// into a hole. The apparent file size does not change (KEEP_SIZE is
// mandatory with PUNCH_HOLE); subsequent reads of the range return
// zeros. Partial filesystem blocks at the edges are zeroed in place
// rather than deallocated. Not every filesystem supports this; ext4,
// xfs, btrfs and tmpfs do.
func PunchHole(f *os.File, offset, length int64) error {
	err := unix.Fallocate(int(f.Fd()),
		unix.FALLOC_FL_PUNCH_HOLE|unix.FALLOC_FL_KEEP_SIZE, offset, length)
	if err == unix.EOPNOTSUPP {
		return ErrUnsupported
	}
	if err != nil {
		return os.NewSyscallError("fallocate", err)
	}
	return nil
}
