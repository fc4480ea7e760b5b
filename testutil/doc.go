// Package testutil provides testing utilities for blobseek.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic byte generators and Handle test doubles.
//
// # Data Generation
//
//	data := testutil.Sequence(10)          // 0, 1, ..., 9
//	rng := testutil.NewRNG(seed)
//	blob := rng.Bytes(1 << 20)             // reproducible random content
//
// # Handle Doubles
//
//	h := testutil.NewBytesHandle(data)     // clipped slicing like a browser Blob
//	c := testutil.NewCountingHandle(h)     // records every Slice call
//	ff := testutil.NewFaultyHandle(h)      // injects slice failures
//	ff.SetFault(testutil.Fault{FailAfterBytes: 4})
package testutil
