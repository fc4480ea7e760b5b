// Package conv provides safe numeric conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned integer types, and precision loss
// when byte offsets cross into float64.
//
// Use cases:
//   - Passing byte offsets to handles that address bytes as float64
//   - Validating sizes reported by such handles
//   - Cursor arithmetic (seek relative to current position or end)
//
// A float64 represents every integer in [0, 2^53-1] exactly. Beyond that bound
// neighbouring integers collapse, so an offset would silently move.
package conv
