package sparsemap

import (
	"fmt"
	"os"
)

// CreateSparseFile creates path as a sparse file with the given
// apparent size: no byte of it is written, so filesystems with sparse
// support allocate nothing (or at most a tail block). The file must not
// already exist. The caller owns the returned handle.
func CreateSparseFile(path string, size int64) (*os.File, error) {
	if size < 0 {
		return nil, fmt.Errorf("sparse file size must be >= 0; not %v", size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("could not truncate %q to %v bytes: %w", path, size, err)
	}
	return f, nil
}
