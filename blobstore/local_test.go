package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/blobseek"
	"github.com/hupe1980/blobseek/internal/mmap"
	"github.com/hupe1980/blobseek/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Open(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("hello world, this is a test blob for blobseek")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data-001.bin"), data, 0o600))

	blob, err := store.Open(ctx, "data-001.bin")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, float64(len(data)), blob.Size())

	b, err := blob.Slice(6, 11)
	require.NoError(t, err)
	require.Equal(t, "world", string(b))

	m, ok := blob.(Mappable)
	require.True(t, ok)
	all, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, all)

	_, err = store.Open(ctx, "missing.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Slice_Boundaries(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "boundary.bin"), []byte("0123456789"), 0o600))

	blob, err := store.Open(ctx, "boundary.bin")
	require.NoError(t, err)
	defer blob.Close()

	// Case 1: Full range
	b, err := blob.Slice(0, 10)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(b))

	// Case 2: Past end (only 8 and 9 available)
	b, err = blob.Slice(8, 13)
	require.NoError(t, err)
	assert.Equal(t, "89", string(b))

	// Case 3: Offset past EOF
	b, err = blob.Slice(20, 25)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestLocalStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "empty.bin"), nil, 0o600))

	blob, err := NewLocalStore(tmpDir).Open(context.Background(), "empty.bin")
	require.NoError(t, err)
	defer blob.Close()

	n, err := blobseek.New(blob).Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestLocalStore_SequentialFile(t *testing.T) {
	tmpDir := t.TempDir()
	data := testutil.NewRNG(4711).Bytes(256 << 10)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "big.bin"), data, 0o600))

	blob, err := NewLocalStore(tmpDir).Open(context.Background(), "big.bin")
	require.NoError(t, err)
	defer blob.Close()

	f := blobseek.New(blob)
	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(data)), size)

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = f.Seek(-100, io.SeekEnd)
	require.NoError(t, err)
	tail := make([]byte, 100)
	_, err = io.ReadFull(f, tail)
	require.NoError(t, err)
	assert.Equal(t, data[len(data)-100:], tail)
}

func TestLocalStore_Scenario(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "seq.bin"), testutil.Sequence(10), 0o600))

	blob, err := NewLocalStore(tmpDir).Open(context.Background(), "seq.bin")
	require.NoError(t, err)
	defer blob.Close()

	f := blobseek.New(blob)
	_, err = f.SeekTo(blobseek.FromStart(3))
	require.NoError(t, err)
	buf := make([]byte, 4)
	_, err = io.ReadFull(f, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5, 6}, buf)

	pos, err := f.SeekTo(blobseek.FromEnd(-2))
	require.NoError(t, err)
	assert.Equal(t, uint64(8), pos)
	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 9}, rest)
}

func TestLocalStore_SliceAfterClose(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "closed.bin"), []byte("abc"), 0o600))

	blob, err := NewLocalStore(tmpDir).Open(context.Background(), "closed.bin")
	require.NoError(t, err)
	require.NoError(t, blob.Close())

	_, err = blob.Slice(0, 2)
	assert.ErrorIs(t, err, mmap.ErrClosed)
}
