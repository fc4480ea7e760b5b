package mmap

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestMapping_Slice(t *testing.T) {
	content := []byte("0123456789")
	m, err := Open(writeTemp(t, content))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(10), m.Size())
	assert.Equal(t, content, m.Bytes())

	tests := []struct {
		name   string
		off, n int64
		want   string
	}{
		{"inside", 3, 4, "3456"},
		{"whole", 0, 10, "0123456789"},
		{"clipped", 8, 5, "89"},
		{"at end", 10, 3, ""},
		{"past end", 15, 3, ""},
		{"zero length", 4, 0, ""},
		{"huge length", 7, math.MaxInt64, "789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := m.Slice(tt.off, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}

	_, err = m.Slice(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = m.Slice(0, -2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMapping_SliceIsCapped(t *testing.T) {
	m, err := Open(writeTemp(t, []byte("abcdef")))
	require.NoError(t, err)
	defer m.Close()

	b, err := m.Slice(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cap(b), "appending must not reach into the rest of the mapping")
}

func TestMapping_EmptyFile(t *testing.T) {
	m, err := Open(writeTemp(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(0), m.Size())
	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessSequential))

	b, err := m.Slice(0, 8)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestMapping_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMapping_Advise(t *testing.T) {
	m, err := Open(writeTemp(t, make([]byte, 1024)))
	require.NoError(t, err)
	defer m.Close()

	for _, p := range []AccessPattern{AccessDefault, AccessSequential, AccessRandom, AccessWillNeed, AccessPattern(99)} {
		assert.NoError(t, m.Advise(p))
	}
}

func TestMapping_AfterClose(t *testing.T) {
	m, err := Open(writeTemp(t, []byte("data")))
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
	_, err = m.Slice(0, 1)
	assert.ErrorIs(t, err, ErrClosed)
}
