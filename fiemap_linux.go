//go:build linux

package sparsemap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fsIocFiemap is the FS_IOC_FIEMAP ioctl request number,
// _IOWR('f', 11, struct fiemap) from include/uapi/linux/fiemap.h.
// golang.org/x/sys/unix does not export it.
const fsIocFiemap = 0xc020660b

// fiemapPageSize is the fixed extent capacity of one request: the
// kernel fills in at most this many extents per ioctl. A file with more
// extents than this has to be mapped with repeated queries, which
// ExtentsInRange does.
const fiemapPageSize = 256

// fiemapExtent mirrors struct fiemap_extent from the kernel uapi
// (include/uapi/linux/fiemap.h). Field order and widths are ABI; any
// reordering or padding mismatch silently corrupts results.
type fiemapExtent struct {
	logical    uint64 // byte offset of the extent in the file
	physical   uint64 // byte offset of the extent on disk
	length     uint64 // length in bytes of the extent
	reserved64 [2]uint64
	flags      uint32 // FIEMAP_EXTENT_* flags
	reserved   [3]uint32
}

// fiemapReq mirrors struct fiemap with the extent array inlined at its
// fixed capacity. The kernel requires reserved fields to be zero; a
// freshly constructed value satisfies that, so requests are never
// reused across calls.
type fiemapReq struct {
	start         uint64 // in: first logical byte to map
	length        uint64 // in: logical length of the mapping
	flags         uint32 // in/out: FIEMAP_FLAG_* flags
	mappedExtents uint32 // out: number of extents filled in
	extentCount   uint32 // in: capacity of the extents array
	reserved      uint32
	extents       [fiemapPageSize]fiemapExtent
}

// fiemapPage issues a single FS_IOC_FIEMAP ioctl covering
// [start, start+length). EOPNOTSUPP becomes ErrUnsupported so callers
// can switch to the seek prober; everything else is a plain syscall
// failure.
func fiemapPage(f *os.File, start, length uint64) (*fiemapReq, error) {
	req := &fiemapReq{
		start:       start,
		length:      length,
		extentCount: fiemapPageSize,
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(),
		uintptr(fsIocFiemap), uintptr(unsafe.Pointer(req)))
	if errno != 0 {
		if errno == unix.EOPNOTSUPP {
			return nil, ErrUnsupported
		}
		return nil, os.NewSyscallError("ioctl", errno)
	}
	return req, nil
}

func (r *fiemapReq) page() []Extent {
	n := int(r.mappedExtents)
	out := make([]Extent, n)
	for i, fe := range r.extents[:n] {
		out[i] = Extent{
			Logical:  fe.logical,
			Physical: fe.physical,
			Length:   fe.length,
			Flags:    fe.flags,
		}
	}
	return out
}

// QuickExtents issues one whole-file extent query and returns the first
// page of extents. more reports that the page filled up without
// reaching the file's last extent, i.e. the result may be truncated and
// must be continued with ExtentsInRange to get a complete map.
func QuickExtents(f *os.File) (extents []Extent, more bool, err error) {
	req, err := fiemapPage(f, 0, WholeFile)
	if err != nil {
		return nil, false, err
	}
	extents = req.page()
	more = len(extents) == fiemapPageSize && !extents[len(extents)-1].Last()
	return extents, more, nil
}

// ExtentsInRange returns every extent overlapping
// [start, start+length), re-querying past the fixed page capacity until
// the map is complete. A full page is treated as possibly truncated:
// the next query starts at the logical end of the last extent returned,
// so pages are contiguous with no duplicates and no gaps. Pass
// WholeFile as length to map to end of file.
func ExtentsInRange(f *os.File, start, length uint64) ([]Extent, error) {
	bounded := length != WholeFile
	var end uint64
	if bounded {
		end = start + length
	}

	var all []Extent
	for {
		reqLen := WholeFile
		if bounded {
			if start >= end {
				break
			}
			reqLen = end - start
		}

		req, err := fiemapPage(f, start, reqLen)
		if err != nil {
			return nil, err
		}
		page := req.page()
		if len(page) == 0 {
			break
		}
		all = append(all, page...)

		last := page[len(page)-1]
		if len(page) < fiemapPageSize || last.Last() {
			break
		}
		start = last.End()
	}
	return all, nil
}

// AllExtents maps the whole file, following pages as needed.
func AllExtents(f *os.File) ([]Extent, error) {
	return ExtentsInRange(f, 0, WholeFile)
}
