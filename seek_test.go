package blobseek

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"testing"

	"github.com/hupe1980/blobseek/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSequenceFile(n int) *File {
	return New(testutil.NewBytesHandle(testutil.Sequence(n)))
}

func TestSeekTo_FromStart(t *testing.T) {
	f := newSequenceFile(10)

	for _, n := range []uint64{0, 3, 10, 15, math.MaxUint64} {
		pos, err := f.SeekTo(FromStart(n))
		require.NoError(t, err)
		assert.Equal(t, n, pos)
		assert.Equal(t, n, f.Position())
	}
}

func TestSeekTo_FromEnd(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		f := newSequenceFile(10)
		pos, err := f.SeekTo(FromEnd(0))
		require.NoError(t, err)

		size, err := f.Size()
		require.NoError(t, err)
		assert.Equal(t, size, pos)

		n, err := f.Read(make([]byte, 4))
		assert.Equal(t, 0, n)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("Backward", func(t *testing.T) {
		f := newSequenceFile(10)
		pos, err := f.SeekTo(FromEnd(-10))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), pos)
	})

	t.Run("Forward", func(t *testing.T) {
		f := newSequenceFile(10)
		pos, err := f.SeekTo(FromEnd(5))
		require.NoError(t, err)
		assert.Equal(t, uint64(15), pos)
	})

	t.Run("BeforeStart", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.SeekTo(FromStart(4))
		require.NoError(t, err)

		_, err = f.SeekTo(FromEnd(-11))
		assert.ErrorIs(t, err, ErrInvalidSeek)
		assert.ErrorIs(t, err, fs.ErrInvalid)
		assert.Equal(t, uint64(4), f.Position())
	})

	t.Run("UnrepresentableSize", func(t *testing.T) {
		f := New(testutil.NewSizedHandle(nil, math.Inf(1)))
		_, err := f.SeekTo(FromEnd(0))
		assert.ErrorIs(t, err, ErrPrecisionLoss)
		assert.Equal(t, uint64(0), f.Position())
	})
}

func TestSeekTo_FromCurrent(t *testing.T) {
	t.Run("Negative", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.SeekTo(FromStart(3))
		require.NoError(t, err)

		_, err = f.SeekTo(FromCurrent(-4))
		assert.ErrorIs(t, err, ErrInvalidSeek)

		pos, err := f.SeekTo(FromCurrent(0))
		require.NoError(t, err)
		assert.Equal(t, uint64(3), pos)
	})

	t.Run("BackAndForth", func(t *testing.T) {
		f := newSequenceFile(10)
		pos, err := f.SeekTo(FromCurrent(7))
		require.NoError(t, err)
		assert.Equal(t, uint64(7), pos)

		pos, err = f.SeekTo(FromCurrent(-7))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), pos)
	})

	t.Run("Overflow", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.SeekTo(FromStart(math.MaxUint64))
		require.NoError(t, err)

		_, err = f.SeekTo(FromCurrent(1))
		assert.ErrorIs(t, err, ErrInvalidSeek)
		assert.Equal(t, uint64(math.MaxUint64), f.Position())

		pos, err := f.SeekTo(FromCurrent(math.MinInt64))
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt64), pos)
	})

	t.Run("MinInt64FromZero", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.SeekTo(FromCurrent(math.MinInt64))
		assert.ErrorIs(t, err, ErrInvalidSeek)
		assert.Equal(t, uint64(0), f.Position())
	})
}

func TestSeek_IOSeeker(t *testing.T) {
	t.Run("Whence", func(t *testing.T) {
		f := newSequenceFile(10)

		pos, err := f.Seek(3, io.SeekStart)
		require.NoError(t, err)
		assert.Equal(t, int64(3), pos)

		pos, err = f.Seek(2, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(5), pos)

		pos, err = f.Seek(-1, io.SeekEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(9), pos)

		b := make([]byte, 1)
		_, err = io.ReadFull(f, b)
		require.NoError(t, err)
		assert.Equal(t, byte(9), b[0])
	})

	t.Run("NegativeStart", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.Seek(-1, io.SeekStart)
		assert.ErrorIs(t, err, ErrInvalidSeek)
		assert.Equal(t, uint64(0), f.Position())
	})

	t.Run("UnknownWhence", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.Seek(0, 42)
		assert.ErrorIs(t, err, ErrInvalidSeek)
	})

	t.Run("BeyondInt64", func(t *testing.T) {
		f := newSequenceFile(10)
		_, err := f.Seek(math.MaxInt64, io.SeekStart)
		require.NoError(t, err)

		_, err = f.Seek(1, io.SeekCurrent)
		assert.ErrorIs(t, err, ErrInvalidSeek)
		assert.Equal(t, uint64(math.MaxInt64), f.Position())
	})

	t.Run("SectionReader", func(t *testing.T) {
		f := newSequenceFile(10)
		got, err := io.ReadAll(io.NewSectionReader(readerAt{f}, 2, 5))
		require.NoError(t, err)
		assert.Equal(t, []byte{2, 3, 4, 5, 6}, got)
	})
}

func TestSeekFrom_String(t *testing.T) {
	assert.Equal(t, "start(3)", FromStart(3).String())
	assert.Equal(t, "current(-2)", FromCurrent(-2).String())
	assert.Equal(t, "end(+0)", FromEnd(0).String())
}

func TestSeek_ErrorsAreDistinct(t *testing.T) {
	f := New(testutil.NewSizedHandle(nil, -1))
	_, err := f.SeekTo(FromEnd(0))
	assert.True(t, errors.Is(err, ErrPrecisionLoss))
	assert.False(t, errors.Is(err, ErrInvalidSeek))
}

// readerAt adapts a File to io.ReaderAt by seeking before each read.
type readerAt struct{ f *File }

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	if _, err := r.f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(r.f, p)
}
