// Package mmap maps local files read-only and serves byte ranges from the
// mapping without copying.
//
//	m, err := mmap.Open("disk.img")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	b, err := m.Slice(512, 4096) // clipped to the file size
//
// Slices alias the mapping and are only valid until Close. Close may be called
// more than once; afterwards Slice and Advise report ErrClosed.
//
// On Unix the file is mapped with mmap(2) and Advise maps to madvise(2). On
// Windows it uses a read-only file mapping view and Advise does nothing.
package mmap
