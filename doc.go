// Package blobseek reads sliceable byte resources through io.Reader and io.Seeker.
//
// Some resources cannot be read at an offset. They can only be cut into a
// sub-range and materialized whole: browser File and Blob objects, ranged GETs
// against object stores, memory-mapped images. blobseek adapts such a Handle
// into a File with a cursor, so it plugs into anything that consumes an
// io.ReadSeeker (archive/zip via io.NewSectionReader, decoders, parsers).
//
// # Quick Start
//
//	store := blobstore.NewLocalStore("./data")
//	blob, _ := store.Open(ctx, "image.bin")
//	defer blob.Close()
//
//	f := blobseek.New(blob)
//	f.Seek(-16, io.SeekEnd)
//	trailer := make([]byte, 16)
//	io.ReadFull(f, trailer)
//
// # Offsets and Precision
//
// Handles address bytes as float64, which is exact only up to 2^53-1. File
// keeps its cursor as uint64 and checks every crossing into float64: an offset,
// end of range, or reported size that cannot be represented exactly fails with
// ErrPrecisionLoss instead of reading the wrong bytes. Seek arithmetic is
// checked as well; a seek below zero or past math.MaxUint64 fails with
// ErrInvalidSeek and leaves the cursor where it was.
//
// Seeking past the end of the handle is allowed. Reads there return io.EOF.
//
// # Backends
//
//   - blobstore.MemoryStore, blobstore.LocalStore (mmap), blobstore.CompressedStore
//   - blobstore/s3, blobstore/minio: ranged object reads
//   - blobstore/billy: any go-billy filesystem
//   - blobstore/webfile: browser File objects under js/wasm in a web worker
//
// # Concurrency
//
// A File is not safe for concurrent use. Handles are: open one File per
// goroutine over a shared Handle. resource.ThrottledHandle bounds how many
// slices run at once and how many bytes per second they pull.
package blobseek
