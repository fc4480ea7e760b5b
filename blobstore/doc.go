// Package blobstore provides handle backends for blobseek.
//
// A Store opens named blobs. Every Blob is a blobseek.Handle: it reports its
// size and materializes [start, end) ranges addressed as float64, clipped to
// the blob. ResolveRange does that conversion and clipping for backends whose
// native addressing is int64. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory blobs for tests
//   - LocalStore: local filesystem with mmap
//   - CompressedStore: decodes zstd or LZ4 blobs from any inner Store
//   - s3.Store: Amazon S3 with ranged GetObject
//   - minio.Store: MinIO and other S3-compatible servers
//   - billy.Store: any go-billy filesystem
//   - webfile.Blob: browser File objects (js/wasm only)
//
// # Custom Implementations
//
//	type Blob interface {
//	    Size() float64
//	    Slice(start, end float64) ([]byte, error)
//	    Close() error
//	}
//
// Slice must return an error rather than an empty result when the source
// fails, and must never return more than end-start bytes.
package blobstore
