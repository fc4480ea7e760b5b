// Package resource bounds the load a group of readers puts on a shared handle.
//
// A Controller governs three resources:
//
//   - Reads: at most MaxConcurrentReads slices are materialized at once
//   - Memory: bytes held by in-flight slices, capped by MemoryLimitBytes
//   - IO: a token bucket of IOLimitBytesPerSec
//
// Wrap a handle once and give the result to any number of blobseek.File
// cursors:
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentReads: 4,
//	    IOLimitBytesPerSec: 32 << 20,
//	})
//	h := resource.NewThrottledHandle(ctx, blob, rc)
//	f := blobseek.New(h)
//
// For consumers that only see a stream, RateLimitedReader charges the same IO
// budget per Read. Wrapping a File with it shares one bucket with the handles:
//
//	r := resource.NewRateLimitedReader(ctx, blobseek.New(blob), rc)
//
// Limits only delay a read. ctx ends the wait, in which case the read fails
// with ctx's error.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
