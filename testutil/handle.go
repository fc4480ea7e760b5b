package testutil

import (
	"fmt"
	"sync"
)

// Handle mirrors blobseek.Handle so the doubles here can wrap any handle
// without importing blobseek.
type Handle interface {
	Size() float64
	Slice(start, end float64) ([]byte, error)
}

// BytesHandle serves slices from memory with browser Blob clipping rules:
// bounds are clamped to [0, len] and an inverted range yields no bytes.
type BytesHandle struct {
	data []byte
	size float64
}

// NewBytesHandle returns a handle over data reporting len(data) as its size.
func NewBytesHandle(data []byte) *BytesHandle {
	return &BytesHandle{data: data, size: float64(len(data))}
}

// NewSizedHandle returns a handle over data that reports size instead of
// len(data). Useful for handles claiming sizes that are not exact integers.
func NewSizedHandle(data []byte, size float64) *BytesHandle {
	return &BytesHandle{data: data, size: size}
}

func (h *BytesHandle) Size() float64 { return h.size }

func (h *BytesHandle) Slice(start, end float64) ([]byte, error) {
	n := float64(len(h.data))
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if end <= start {
		return []byte{}, nil
	}
	out := make([]byte, int(end)-int(start))
	copy(out, h.data[int(start):int(end)])
	return out, nil
}

// SliceCall records the arguments of one Slice call.
type SliceCall struct {
	Start float64
	End   float64
}

// CountingHandle wraps a Handle and records every Slice call.
type CountingHandle struct {
	Handle
	mu    sync.Mutex
	calls []SliceCall
}

// NewCountingHandle wraps h.
func NewCountingHandle(h Handle) *CountingHandle {
	return &CountingHandle{Handle: h}
}

func (c *CountingHandle) Slice(start, end float64) ([]byte, error) {
	c.mu.Lock()
	c.calls = append(c.calls, SliceCall{Start: start, End: end})
	c.mu.Unlock()
	return c.Handle.Slice(start, end)
}

// Calls returns a copy of the recorded calls.
func (c *CountingHandle) Calls() []SliceCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]SliceCall(nil), c.calls...)
}

// Fault defines specific failure behavior.
type Fault struct {
	FailAfterBytes int64 // Fail slices once this many bytes were served. -1 to disable.
	FailOnSlice    bool  // Fail every slice.
	Overread       int   // Append this many junk bytes to every slice.
	Err            error
}

// FaultyHandle is a Handle wrapper that can inject errors.
type FaultyHandle struct {
	Handle
	mu     sync.Mutex
	fault  Fault
	served int64
}

// NewFaultyHandle wraps h with faults disabled.
func NewFaultyHandle(h Handle) *FaultyHandle {
	return &FaultyHandle{
		Handle: h,
		fault:  Fault{FailAfterBytes: -1},
	}
}

// SetFault replaces the active fault.
func (f *FaultyHandle) SetFault(fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fault = fault
}

// Served returns the total bytes handed out so far.
func (f *FaultyHandle) Served() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.served
}

func (f *FaultyHandle) Slice(start, end float64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.fault.Err
	if err == nil {
		err = fmt.Errorf("injected fault error")
	}
	if f.fault.FailOnSlice {
		return nil, err
	}
	if f.fault.FailAfterBytes >= 0 && f.served >= f.fault.FailAfterBytes {
		return nil, err
	}

	b, sliceErr := f.Handle.Slice(start, end)
	if sliceErr != nil {
		return nil, sliceErr
	}
	f.served += int64(len(b))
	if f.fault.Overread > 0 {
		b = append(b, make([]byte, f.fault.Overread)...)
	}
	return b, nil
}
