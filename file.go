package blobseek

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/blobseek/internal/conv"
)

// File reads a Handle sequentially through a cursor, implementing io.Reader
// and io.Seeker on top of the handle's slice primitive.
//
// A File is not safe for concurrent use. Use one File per goroutine; several
// Files may share the same Handle.
type File struct {
	handle  Handle
	pos     uint64
	logger  *Logger
	metrics MetricsCollector
}

var _ io.ReadSeeker = (*File)(nil)

// New wraps h in a File positioned at offset 0.
// The File holds h but never closes it.
func New(h Handle, optFns ...Option) *File {
	o := applyOptions(optFns)
	return &File{
		handle:  h,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Size returns the size of the underlying handle in bytes.
func (f *File) Size() (uint64, error) {
	reported := f.handle.Size()
	size, err := conv.Float64ToUint64(reported)
	if err != nil {
		err = &PrecisionError{Op: "size", cause: err}
	}
	f.logger.LogSize(reported, size, err)
	return size, err
}

// Position returns the offset the next Read starts from.
// It may be past the end of the handle.
func (f *File) Position() uint64 {
	return f.pos
}

// Read reads up to len(p) bytes starting at the current position and advances
// the position by the number of bytes actually read.
//
// At or past the end of the handle Read returns 0, io.EOF. A short read near
// the end returns the available bytes with a nil error.
func (f *File) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	started := time.Now()
	offset := f.pos
	defer func() {
		f.metrics.RecordRead(n, time.Since(started), err)
		f.logger.LogRead(offset, len(p), n, err)
	}()

	length, err := conv.IntToUint64(len(p))
	if err != nil {
		return 0, &PrecisionError{Op: "read", cause: err}
	}
	end := conv.SaturatingAddUint64(offset, length)

	startF, err := conv.Uint64ToFloat64(offset)
	if err != nil {
		return 0, &PrecisionError{Op: "read offset", cause: err}
	}
	endF, err := conv.Uint64ToFloat64(end)
	if err != nil {
		return 0, &PrecisionError{Op: "read end", cause: err}
	}

	data, err := f.handle.Slice(startF, endF)
	if err != nil {
		return 0, &RangeError{Start: offset, End: end, cause: err}
	}
	if len(data) > len(p) {
		return 0, &RangeError{
			Start: offset,
			End:   end,
			cause: fmt.Errorf("%w: got %d, want at most %d", ErrOverread, len(data), len(p)),
		}
	}

	n = copy(p, data)

	next, ok := conv.AddUint64(offset, uint64(n))
	if !ok {
		return 0, &PrecisionError{Op: "read advance", cause: fmt.Errorf("%w: position %d + %d overflows", ErrPrecisionLoss, offset, n)}
	}
	f.pos = next

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
