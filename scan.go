package sparsemap

import (
	"errors"
	"os"
)

// Segment is one classified byte range of a file: either data or a
// hole. Segments produced by Scan alternate, never overlap, and cover
// [0, file size) exactly.
type Segment struct {
	Offset uint64
	Length uint64
	Hole   bool
}

// End returns the offset just past this segment.
func (s Segment) End() uint64 { return s.Offset + s.Length }

// Scan walks the file with alternating SeekData/SeekHole probes and
// returns its data and hole segments in ascending order. It moves the
// handle's cursor. ErrUnsupported means the filesystem has no
// sparse-aware seeks; the file content is untouched either way.
func Scan(f *os.File) ([]Segment, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := uint64(fi.Size())
	if size == 0 {
		return nil, nil
	}

	var segs []Segment
	var pos uint64
	for pos < size {
		data, eof, err := SeekData(f, pos)
		if err != nil {
			return nil, err
		}
		if eof || data >= size {
			// Only hole left between pos and end of file.
			segs = append(segs, Segment{Offset: pos, Length: size - pos, Hole: true})
			break
		}
		if data > pos {
			segs = append(segs, Segment{Offset: pos, Length: data - pos, Hole: true})
		}

		// SEEK_HOLE cannot fail with ENXIO here: every file has a
		// virtual hole at its end, and data is in bounds.
		hole, eof, err := SeekHole(f, data)
		if err != nil {
			return nil, err
		}
		if eof || hole > size {
			hole = size
		}
		segs = append(segs, Segment{Offset: data, Length: hole - data, Hole: false})
		pos = hole
	}
	return segs, nil
}

// Usage is the storage breakdown of one file.
type Usage struct {
	Data  uint64 // bytes backed by allocated storage
	Holes uint64 // bytes read as zeros with no backing storage
}

// Total returns the apparent file size.
func (u Usage) Total() uint64 { return u.Data + u.Holes }

// ScanUsage sums a Scan into data/hole byte totals.
func ScanUsage(f *os.File) (Usage, error) {
	segs, err := Scan(f)
	if err != nil {
		return Usage{}, err
	}
	var u Usage
	for _, s := range segs {
		if s.Hole {
			u.Holes += s.Length
		} else {
			u.Data += s.Length
		}
	}
	return u, nil
}

// SparseMap returns the file's allocated extents, degrading gracefully
// where filesystem support is missing: the fiemap extent query first,
// then a seek-probe scan (physical locations unknown), and finally the
// whole file as one opaque extent. Only genuine failures are returned
// as errors; ErrUnsupported never escapes this function.
func SparseMap(f *os.File) ([]Extent, error) {
	extents, err := AllExtents(f)
	if err == nil {
		return extents, nil
	}
	if !errors.Is(err, ErrUnsupported) {
		return nil, err
	}

	segs, err := Scan(f)
	if err == nil {
		var out []Extent
		for _, s := range segs {
			if s.Hole {
				continue
			}
			out = append(out, Extent{
				Logical: s.Offset,
				Length:  s.Length,
				Flags:   ExtentUnknown,
			})
		}
		if len(out) > 0 {
			out[len(out)-1].Flags |= ExtentLast
		}
		return out, nil
	}
	if !errors.Is(err, ErrUnsupported) {
		return nil, err
	}

	// No extent reporting at all: one opaque extent.
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, nil
	}
	return []Extent{{
		Logical: 0,
		Length:  uint64(fi.Size()),
		Flags:   ExtentUnknown | ExtentLast,
	}}, nil
}
