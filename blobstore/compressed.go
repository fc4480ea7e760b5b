package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a blob is stored by the inner store.
type Compression uint8

const (
	// CompressionNone passes blobs through untouched.
	CompressionNone Compression = iota
	// CompressionZstd stores blobs as a zstd frame.
	CompressionZstd
	// CompressionLZ4 stores blobs as an LZ4 frame.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// CompressedStore wraps a Store whose blobs are compressed streams.
//
// Compressed frames cannot be sliced at arbitrary offsets, so Open fetches the
// whole blob from the inner store, decodes it, and serves slices from memory.
// MaxDecodedSize bounds the decoded size; zero means no limit.
type CompressedStore struct {
	inner          Store
	compression    Compression
	MaxDecodedSize int64
}

// NewCompressedStore creates a new CompressedStore.
func NewCompressedStore(inner Store, c Compression) *CompressedStore {
	return &CompressedStore{
		inner:       inner,
		compression: c,
	}
}

// Open opens and fully decodes a blob.
func (s *CompressedStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.compression == CompressionNone {
		return b, nil
	}
	defer func() { _ = b.Close() }()

	raw, err := readWhole(b)
	if err != nil {
		return nil, fmt.Errorf("blobstore: read %q: %w", name, err)
	}

	data, err := s.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("blobstore: decode %q (%s): %w", name, s.compression, err)
	}
	return NewMemoryBlob(data), nil
}

func (s *CompressedStore) decode(raw []byte) ([]byte, error) {
	var r io.Reader
	switch s.compression {
	case CompressionZstd:
		opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
		if s.MaxDecodedSize > 0 {
			opts = append(opts, zstd.WithDecoderMaxMemory(uint64(s.MaxDecodedSize)))
		}
		dec, err := zstd.NewReader(bytes.NewReader(raw), opts...)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	case CompressionLZ4:
		r = lz4.NewReader(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported compression %s", s.compression)
	}

	if s.MaxDecodedSize > 0 {
		r = io.LimitReader(r, s.MaxDecodedSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if s.MaxDecodedSize > 0 && int64(len(data)) > s.MaxDecodedSize {
		return nil, fmt.Errorf("decoded size exceeds limit of %d bytes", s.MaxDecodedSize)
	}
	return data, nil
}
