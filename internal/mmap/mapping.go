package mmap

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/hupe1980/blobseek/internal/conv"
)

// Mapping is a read-only view of a whole file.
type Mapping struct {
	data   []byte
	size   int64
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps the file at path. Empty files get a mapping without backing memory.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{}, nil
	}
	if size < 0 || uint64(size) > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrInvalidSize, path, size)
	}

	data, unmap, err := osMap(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmap: map %s: %w", path, err)
	}

	return &Mapping{data: data, size: size, unmap: unmap}, nil
}

// Size returns the length of the mapped file.
func (m *Mapping) Size() int64 {
	return m.size
}

// Slice returns up to n bytes starting at off, aliasing the mapping.
// The range is clipped to the file: an offset at or past the end yields an
// empty slice.
func (m *Mapping) Slice(off, n int64) ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	start, err := conv.Int64ToUint64(off)
	if err != nil {
		return nil, fmt.Errorf("%w: offset %d", ErrOutOfBounds, off)
	}
	length, err := conv.Int64ToUint64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: length %d", ErrOutOfBounds, n)
	}

	size := uint64(m.size)
	if start >= size || length == 0 {
		return []byte{}, nil
	}
	end := min(conv.SaturatingAddUint64(start, length), size)

	// end <= size, and size was checked against MaxInt in Open.
	lo, err := conv.Uint64ToInt(start)
	if err != nil {
		return nil, err
	}
	hi, err := conv.Uint64ToInt(end)
	if err != nil {
		return nil, err
	}
	return m.data[lo:hi:hi], nil
}

// Bytes returns the whole mapping, or nil once closed.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Advise passes an access hint to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// Close releases the mapping. Only the first call unmaps.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.unmap == nil || m.data == nil {
		return nil
	}
	return m.unmap(m.data)
}
