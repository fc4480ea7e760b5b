package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/blobseek/internal/mmap"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps a blob into memory for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path := filepath.Join(s.root, name)
	// We use mmap for local files; slices become plain sub-slices of the mapping.
	m, err := mmap.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("blobstore: open %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	// Files are consumed front to back.
	if err := m.Advise(mmap.AccessSequential); err != nil {
		_ = m.Close()
		return nil, err
	}
	return &localBlob{m: m}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) Size() float64 {
	return float64(b.m.Size())
}

// Slice returns a view into the mapping; it is valid until Close.
func (b *localBlob) Slice(start, end float64) ([]byte, error) {
	off, n, err := ResolveRange(start, end, b.m.Size())
	if err != nil {
		return nil, err
	}
	return b.m.Slice(off, n)
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Bytes(), nil
}
