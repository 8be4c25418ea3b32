// Package sparsemap reports which byte ranges of a file are physically
// allocated and which are holes.
//
// Two independent primitives are provided, both operating on an
// already-open *os.File: the fiemap extent query (QuickExtents,
// ExtentsInRange, AllExtents), and the sparse-aware seek prober
// (LseekTo, SeekData, SeekHole). SparseMap composes them: fiemap first,
// seek-scan fallback where the filesystem has no fiemap support.
//
// The package never opens, creates, or closes the files it queries;
// CreateSparseFile and PunchHole exist for callers (and tests) that
// need to build sparse fixtures.
package sparsemap

import "errors"

// Extent is one contiguous allocated region of a file. Logical and
// Physical are byte offsets, from the start of the file and of the
// backing device respectively.
type Extent struct {
	Logical  uint64
	Physical uint64
	Length   uint64
	Flags    uint32
}

// Extent flag bits, as defined by the kernel fiemap interface
// (include/uapi/linux/fiemap.h). Kept as portable constants so Extent
// values can be inspected on any platform; the numbers are part of the
// kernel ABI and do not vary by architecture.
const (
	ExtentLast      = 0x0001 // last extent in the file
	ExtentUnknown   = 0x0002 // data location unknown
	ExtentDelalloc  = 0x0004 // allocation delayed, not yet on disk
	ExtentEncoded   = 0x0008 // data stored encoded (e.g. compressed)
	ExtentUnwritten = 0x0800 // space allocated but unwritten, reads as zeros
	ExtentMerged    = 0x1000 // result of merging several smaller extents
	ExtentShared    = 0x2000 // blocks shared with another file (reflink)
)

// Last reports whether this is the final extent in the file.
func (e Extent) Last() bool { return e.Flags&ExtentLast != 0 }

// End returns the logical offset just past this extent.
func (e Extent) End() uint64 { return e.Logical + e.Length }

// WholeFile is the "rest of file" length sentinel: a query of length
// WholeFile covers everything from the start offset to end of file.
const WholeFile = ^uint64(0)

// ErrUnsupported means the filesystem (or platform) cannot answer the
// request: fiemap on filesystems without extent mapping, SEEK_DATA on
// filesystems predating sparse-aware seeks. Callers should fall back to
// the other primitive, or treat the whole file as one opaque extent.
// Any other failure surfaces as an *os.SyscallError carrying the
// original errno.
var ErrUnsupported = errors.New("filesystem does not support this operation")
