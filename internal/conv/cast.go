package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// MaxSafeInteger is the largest integer a float64 holds without loss (2^53 - 1).
const MaxSafeInteger uint64 = 1<<53 - 1

// ErrPrecisionLoss is returned when a value cannot cross the integer/float64
// boundary exactly.
var ErrPrecisionLoss = errors.New("precision loss")

// Uint64ToFloat64 converts uint64 to float64 only if the result is exact.
func Uint64ToFloat64(v uint64) (float64, error) {
	if v > MaxSafeInteger {
		return 0, fmt.Errorf("%w: %d exceeds max safe integer %d", ErrPrecisionLoss, v, MaxSafeInteger)
	}
	return float64(v), nil
}

// Float64ToUint64 converts float64 to uint64 only if v is a non-negative
// integer no larger than MaxSafeInteger. NaN and infinities are rejected.
func Float64ToUint64(v float64) (uint64, error) {
	// NaN fails both comparisons.
	if !(v >= 0 && v <= float64(MaxSafeInteger)) {
		return 0, fmt.Errorf("%w: %v is not a safe unsigned integer", ErrPrecisionLoss, v)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %v is not integral", ErrPrecisionLoss, v)
	}
	return uint64(v), nil
}

// AddInt64 adds a signed delta to an unsigned base.
// ok is false if the result would be negative or exceed math.MaxUint64.
func AddInt64(base uint64, delta int64) (uint64, bool) {
	sum, carry := bits.Add64(base, uint64(delta), 0)
	// A negative delta always carries unless the result goes below zero.
	overflow := (carry != 0) != (delta < 0)
	if overflow {
		return 0, false
	}
	return sum, true
}

// AddUint64 adds two uint64 values. ok is false on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// SaturatingAddUint64 adds two uint64 values, clamping at math.MaxUint64.
func SaturatingAddUint64(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// Int64ToUint64 converts int64 to uint64 safely.
func Int64ToUint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}
