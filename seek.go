package blobseek

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hupe1980/blobseek/internal/conv"
)

// SeekFrom describes a seek target: an absolute offset, or a signed delta
// relative to the current position or to the end of the handle.
//
// Build one with FromStart, FromCurrent or FromEnd.
type SeekFrom struct {
	whence int
	start  uint64
	delta  int64
}

// FromStart seeks to the absolute offset n. Offsets past the end are allowed.
func FromStart(n uint64) SeekFrom {
	return SeekFrom{whence: io.SeekStart, start: n}
}

// FromCurrent seeks delta bytes from the current position.
func FromCurrent(delta int64) SeekFrom {
	return SeekFrom{whence: io.SeekCurrent, delta: delta}
}

// FromEnd seeks delta bytes from the end of the handle.
func FromEnd(delta int64) SeekFrom {
	return SeekFrom{whence: io.SeekEnd, delta: delta}
}

func (s SeekFrom) String() string {
	switch s.whence {
	case io.SeekStart:
		return fmt.Sprintf("start(%d)", s.start)
	case io.SeekCurrent:
		return fmt.Sprintf("current(%+d)", s.delta)
	case io.SeekEnd:
		return fmt.Sprintf("end(%+d)", s.delta)
	default:
		return fmt.Sprintf("whence(%d)", s.whence)
	}
}

// SeekTo moves the cursor to the position described by s and returns it.
//
// On failure the position is unchanged. Seeks that would land below zero or
// above math.MaxUint64 fail with ErrInvalidSeek.
func (f *File) SeekTo(s SeekFrom) (uint64, error) {
	return f.seek(s, math.MaxUint64)
}

// Seek implements io.Seeker.
//
// Go's io.Seeker is limited to int64, so negative absolute offsets and
// results above math.MaxInt64 are rejected with ErrInvalidSeek. Use SeekTo
// to reach the full uint64 range.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var s SeekFrom
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, fmt.Errorf("%w: negative offset %d", ErrInvalidSeek, offset)
		}
		s = FromStart(uint64(offset))
	case io.SeekCurrent:
		s = FromCurrent(offset)
	case io.SeekEnd:
		s = FromEnd(offset)
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
	}

	pos, err := f.seek(s, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	return int64(pos), nil
}

func (f *File) seek(s SeekFrom, limit uint64) (pos uint64, err error) {
	started := time.Now()
	defer func() {
		f.metrics.RecordSeek(time.Since(started), err)
		f.logger.LogSeek(s.String(), pos, err)
	}()

	pos, err = f.target(s)
	if err != nil {
		return 0, err
	}
	if pos > limit {
		return 0, fmt.Errorf("%w: position %d exceeds %d", ErrInvalidSeek, pos, limit)
	}
	f.pos = pos
	return pos, nil
}

// target resolves s against the current state without moving the cursor.
func (f *File) target(s SeekFrom) (uint64, error) {
	var base uint64
	switch s.whence {
	case io.SeekStart:
		return s.start, nil
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		size, err := f.Size()
		if err != nil {
			return 0, err
		}
		base = size
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, s.whence)
	}

	pos, ok := conv.AddInt64(base, s.delta)
	if !ok {
		return 0, fmt.Errorf("%w: %d%+d", ErrInvalidSeek, base, s.delta)
	}
	return pos, nil
}
