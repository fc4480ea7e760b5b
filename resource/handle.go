package resource

import (
	"context"
	"fmt"

	"github.com/hupe1980/blobseek"
)

// ThrottledHandle applies a Controller's limits to every Slice of a handle.
// It is safe to share between cursors if the wrapped handle is.
type ThrottledHandle struct {
	h   blobseek.Handle
	rc  *Controller
	ctx context.Context
}

var _ blobseek.Handle = (*ThrottledHandle)(nil)

// NewThrottledHandle wraps h. ctx bounds every wait for a limit.
func NewThrottledHandle(ctx context.Context, h blobseek.Handle, rc *Controller) *ThrottledHandle {
	return &ThrottledHandle{h: h, rc: rc, ctx: ctx}
}

func (t *ThrottledHandle) Size() float64 {
	return t.h.Size()
}

// Slice takes a read slot and reserves memory for the expected bytes before
// calling the wrapped handle, then charges the IO budget for what it returned.
func (t *ThrottledHandle) Slice(start, end float64) ([]byte, error) {
	if err := t.rc.AcquireRead(t.ctx); err != nil {
		return nil, fmt.Errorf("resource: acquire read: %w", err)
	}
	defer t.rc.ReleaseRead()

	want := expected(start, end, t.h.Size())
	if err := t.rc.AcquireMemory(t.ctx, want); err != nil {
		return nil, fmt.Errorf("resource: acquire memory: %w", err)
	}
	defer t.rc.ReleaseMemory(want)

	data, err := t.h.Slice(start, end)
	if err != nil {
		return nil, err
	}

	if err := t.rc.AcquireIO(t.ctx, len(data)); err != nil {
		return nil, fmt.Errorf("resource: acquire io: %w", err)
	}
	return data, nil
}

// expected estimates how many bytes Slice(start, end) materializes.
// Values come from the float64 domain, where integers up to 2^53 are exact.
func expected(start, end, size float64) int64 {
	start = max(start, 0)
	end = min(end, size)
	if !(end > start) {
		return 0
	}
	return int64(end - start)
}
