package mmap

import "errors"

// AccessPattern is a paging hint for Advise.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential favours read-ahead, the usual pattern of a cursor.
	AccessSequential
	AccessRandom
	AccessWillNeed
	AccessDontNeed
)

var (
	// ErrClosed is returned by Slice and Advise after Close.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned by Open for files that do not fit the address space.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned by Slice for a negative offset or length.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
)
