package blobstore

import (
	"fmt"

	"github.com/hupe1980/blobseek/internal/conv"
)

// ResolveRange converts a slice request [start, end) from the float64 domain
// into a byte offset and length clipped to a blob of the given size.
//
// An inverted range, or one starting at or past size, resolves to length 0.
// Values that are not exact non-negative integers are rejected.
func ResolveRange(start, end float64, size int64) (off, n int64, err error) {
	s, err := conv.Float64ToUint64(start)
	if err != nil {
		return 0, 0, fmt.Errorf("blobstore: range start: %w", err)
	}
	e, err := conv.Float64ToUint64(end)
	if err != nil {
		return 0, 0, fmt.Errorf("blobstore: range end: %w", err)
	}
	sz, err := conv.Int64ToUint64(size)
	if err != nil {
		return 0, 0, fmt.Errorf("blobstore: blob size: %w", err)
	}

	if s >= sz || e <= s {
		return toInt64(min(s, sz), 0)
	}
	e = min(e, sz)

	return toInt64(s, e-s)
}

func toInt64(off, n uint64) (int64, int64, error) {
	o, err := conv.Uint64ToInt64(off)
	if err != nil {
		return 0, 0, fmt.Errorf("blobstore: range offset: %w", err)
	}
	l, err := conv.Uint64ToInt64(n)
	if err != nil {
		return 0, 0, fmt.Errorf("blobstore: range length: %w", err)
	}
	return o, l, nil
}

// readWhole materializes the entire blob.
func readWhole(b Blob) ([]byte, error) {
	size, err := conv.Float64ToUint64(b.Size())
	if err != nil {
		return nil, fmt.Errorf("blobstore: blob size: %w", err)
	}
	return b.Slice(0, float64(size))
}
