//go:build !linux && !darwin

package sparsemap

import "os"

// Sparseness detection needs st_blocks, which os.FileInfo.Sys() only
// exposes on unix. Windows would use fsutil-style queries via
// GetFileInformationByHandleEx; not implemented yet.
func IsSparseFile(f *os.File) (bool, error) {
	return false, ErrUnsupported
}
