//go:build linux || darwin

package sparsemap

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLseekToExactOffset(t *testing.T) {
	dir := tempDir(t)
	f := mkSparse(t, dir, 0)

	// 0..255 repeating, so every offset has a known byte.
	pattern := make([]byte, 8192)
	for i := range pattern {
		pattern[i] = byte(i)
	}
	writeAt(t, f, pattern, 0)

	off, eof, err := LseekTo(f, 1000)
	require.NoError(t, err)
	assert.False(t, eof)
	assert.Equal(t, uint64(1000), off)

	// The next read starts at that byte.
	buf := make([]byte, 4)
	_, err = io.ReadFull(f, buf)
	require.NoError(t, err)
	assert.Equal(t, pattern[1000:1004], buf)
}

func TestLseekToPastEndOfFile(t *testing.T) {
	dir := tempDir(t)
	f := mkSparse(t, dir, 4096)

	// Plain absolute seeks past end of file are valid on regular
	// files; the cursor just points into nothing.
	off, eof, err := LseekTo(f, 1<<20)
	require.NoError(t, err)
	assert.False(t, eof)
	assert.Equal(t, uint64(1<<20), off)
}

func TestSeekDataSkipsLeadingHole(t *testing.T) {
	dir := tempDir(t)
	f := mkSparse(t, dir, mib)

	data := []byte("test data")
	offset := uint64(512 * 1024)
	writeAt(t, f, data, int64(offset))

	off, eof, err := SeekData(f, 0)
	skipUnsupported(t, err)
	require.NoError(t, err)
	require.False(t, eof)

	// Data is reported at block granularity: at or before the written
	// byte, but past the leading hole.
	bsize := uint64(blockSize(t, f))
	assert.LessOrEqual(t, off, offset)
	assert.Greater(t, off+bsize, offset)

	hole, eof, err := SeekHole(f, off)
	require.NoError(t, err)
	require.False(t, eof)
	assert.GreaterOrEqual(t, hole, offset+uint64(len(data)))
}

func TestSeekDataPastEndOfFile(t *testing.T) {
	dir := tempDir(t)
	f := mkSparse(t, dir, mib)
	writeAt(t, f, []byte("x"), 0)

	// At or beyond end of file there is no further data: the probe
	// reports end-of-region, never a raw errno.
	_, eof, err := SeekData(f, mib)
	skipUnsupported(t, err)
	require.NoError(t, err)
	assert.True(t, eof)

	_, eof, err = SeekData(f, mib*10)
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestSeekHoleFindsTrailingHole(t *testing.T) {
	dir := tempDir(t)
	f := mkSparse(t, dir, mib)
	block := bytes.Repeat([]byte{0xab}, 4096)
	writeAt(t, f, block, 0)

	off, eof, err := SeekHole(f, 0)
	skipUnsupported(t, err)
	require.NoError(t, err)
	require.False(t, eof)
	assert.GreaterOrEqual(t, off, uint64(len(block)))
	assert.LessOrEqual(t, off, uint64(mib))
}
