//go:build linux || darwin

package sparsemap

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

const mib = 1024 * 1024

// Fixtures go in a tempdir next to the package rather than /tmp, which
// is commonly tmpfs. tmpfs supports sparse seeks but not fiemap, so
// tests there would never exercise the extent query.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp(".", "sparsemap-test-")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// mkSparse creates a sparse fixture file of the given apparent size and
// returns an open read/write handle.
func mkSparse(t *testing.T, dir string, size int64) *os.File {
	t.Helper()
	f, err := CreateSparseFile(filepath.Join(dir, "sparse.bin"), size)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// writeAt writes data into the fixture and syncs, so delayed
// allocation cannot hide the extent from a following query.
func writeAt(t *testing.T, f *os.File, data []byte, off int64) {
	t.Helper()
	n, err := f.WriteAt(data, off)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.NoError(t, f.Sync())
}

// blockSize returns the filesystem's preferred I/O block size, the
// granularity extents and holes are reported at.
func blockSize(t *testing.T, f *os.File) int64 {
	t.Helper()
	fi, err := f.Stat()
	require.NoError(t, err)
	return int64(fi.Sys().(*syscall.Stat_t).Blksize)
}

// skipUnsupported skips the test when the filesystem under the package
// directory cannot answer the query at all.
func skipUnsupported(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, ErrUnsupported) {
		t.Skipf("skipping: %v", err)
	}
}
