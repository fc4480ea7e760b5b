package billy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hupe1980/blobseek/blobstore"
)

// Store implements blobstore.Store on top of a billy.Filesystem.
type Store struct {
	fs billy.Filesystem
}

// NewStore returns a store reading from fs.
func NewStore(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// Open opens the named file. Its size is captured once.
func (s *Store) Open(_ context.Context, name string) (blobstore.Blob, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, blobstore.ErrNotFound
		}
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("billy: open %q: is a directory", name)
	}

	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, blobstore.ErrNotFound
		}
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}

	return &billyBlob{file: f, size: info.Size()}, nil
}

// List returns the names of all regular files under prefix in lexical order.
func (s *Store) List(_ context.Context, prefix string) ([]string, error) {
	root := prefix
	if root == "" {
		root = "."
	}

	var names []string
	err := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			names = append(names, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("billy: walk %q: %w", root, err)
	}

	sort.Strings(names)
	return names, nil
}

type billyBlob struct {
	file billy.File
	size int64
}

func (b *billyBlob) Size() float64 {
	return float64(b.size)
}

func (b *billyBlob) Slice(start, end float64) ([]byte, error) {
	off, n, err := blobstore.ResolveRange(start, end, b.size)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	m, err := b.file.ReadAt(buf, off)
	if err != nil && !(errors.Is(err, io.EOF) && int64(m) == n) {
		if errors.Is(err, io.EOF) {
			// The file shrank after Open.
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("billy: readat %q off=%d: %w", b.file.Name(), off, err)
	}
	return buf, nil
}

func (b *billyBlob) Close() error {
	if err := b.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", b.file.Name(), err)
	}
	return nil
}
