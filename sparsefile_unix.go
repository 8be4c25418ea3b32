//go:build linux || darwin

package sparsemap

import (
	"os"
	"syscall"
)

// IsSparseFile reports whether fewer bytes are allocated to the file
// than its apparent size. This is an operational definition: a file
// with multiple extents but full allocation is not sparse, and a
// filesystem that compresses transparently can look sparse. It is the
// check that matters for "will reading this hit holes".
func IsSparseFile(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, err
	}

	stat := fi.Sys().(*syscall.Stat_t)
	apparent := stat.Size
	// st_blocks is always in 512-byte units, regardless of st_blksize.
	actual := stat.Blocks * 512

	return actual < apparent, nil
}
