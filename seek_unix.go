//go:build linux || darwin

package sparsemap

import (
	"os"

	"golang.org/x/sys/unix"
)

// The seek prober. lseek(2) overloads ENXIO as an in-band result: for
// SEEK_DATA/SEEK_HOLE it means "nothing further in this direction", and
// for plain SEEK_SET on device-backed files it marks the end of the
// addressable region. That outcome is translated to the eof result
// here, never returned as a raw error.
//
// All three probes move the handle's cursor. A shared *os.File means a
// shared cursor; concurrent probing of one file needs independently
// opened handles.

// LseekTo repositions the file cursor to the absolute offset to.
// On success off is the new cursor position (always equal to to for
// regular files). eof reports that no valid position exists at or past
// to.
func LseekTo(f *os.File, to uint64) (off uint64, eof bool, err error) {
	return seekProbe(f, to, unix.SEEK_SET)
}

// SeekData positions the cursor at the first byte of data at or after
// from, skipping any hole. eof reports that only holes (or end of
// file) remain past from.
func SeekData(f *os.File, from uint64) (off uint64, eof bool, err error) {
	return seekProbe(f, from, unix.SEEK_DATA)
}

// SeekHole positions the cursor at the first hole at or after from. A
// file always has a virtual hole at its end, so on a filesystem with
// SEEK_HOLE support eof is only possible for offsets past end of file.
func SeekHole(f *os.File, from uint64) (off uint64, eof bool, err error) {
	return seekProbe(f, from, unix.SEEK_HOLE)
}

func seekProbe(f *os.File, to uint64, whence int) (uint64, bool, error) {
	off, err := unix.Seek(int(f.Fd()), int64(to), whence)
	switch err {
	case nil:
		return uint64(off), false, nil
	case unix.ENXIO:
		// End of region, not a failure.
		return 0, true, nil
	case unix.EINVAL:
		if whence == unix.SEEK_DATA || whence == unix.SEEK_HOLE {
			// Filesystem predates sparse-aware seeks.
			return 0, false, ErrUnsupported
		}
	}
	return 0, false, os.NewSyscallError("lseek", err)
}
