package blobseek

// Handle is a byte-addressable resource that can only be sliced and materialized.
//
// Offsets cross this interface as float64 because the hosts that provide such
// resources (browser File/Blob objects, JSON-described objects) have no other
// numeric type. File only passes integral values in [0, 2^53-1].
//
// Implementations must be safe to slice from several File cursors at once
// since slicing does not mutate the resource.
type Handle interface {
	// Size returns the total size of the resource in bytes.
	Size() float64

	// Slice synchronously materializes the bytes in [start, end).
	// The range is clipped to the resource; fewer bytes than requested are
	// returned when end is past the end of the resource, never more.
	// A failure to materialize must be reported as an error, not as an empty slice.
	Slice(start, end float64) ([]byte, error)
}
