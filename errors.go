package blobseek

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hupe1980/blobseek/internal/conv"
)

var (
	// ErrInvalidSeek is returned when a seek would move the cursor below zero
	// or past the largest representable offset. It satisfies errors.Is(err, fs.ErrInvalid).
	ErrInvalidSeek = fmt.Errorf("invalid seek to a negative or overflowing position: %w", fs.ErrInvalid)

	// ErrPrecisionLoss is returned when an offset, length or size cannot be
	// represented exactly in the handle's float64 domain.
	ErrPrecisionLoss = conv.ErrPrecisionLoss

	// ErrOverread is returned when a handle materializes more bytes than requested.
	ErrOverread = errors.New("handle returned more bytes than requested")
)

// PrecisionError reports a value that could not cross between uint64 offsets
// and the handle's float64 domain without loss. The operation is aborted and
// the cursor is left unchanged.
//
// The original underlying error can be accessed via errors.Unwrap.
type PrecisionError struct {
	Op    string
	cause error
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("blobseek: %s: %v", e.Op, e.cause)
}

func (e *PrecisionError) Unwrap() error { return e.cause }

// RangeError indicates the handle failed to materialize [Start, End).
//
// The original underlying error can be accessed via errors.Unwrap.
type RangeError struct {
	Start uint64
	End   uint64
	cause error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("blobseek: slice [%d, %d): %v", e.Start, e.End, e.cause)
}

func (e *RangeError) Unwrap() error { return e.cause }
