// Package buf contains the bounds arithmetic shared by strict and clamped view operations.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// InRange reports whether [off, off+n) lies within a buffer of length size.
// Negative offsets and counts are never in range.
func InRange(size, off, n int) bool {
	if off < 0 || n < 0 || off > size {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= size
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if !InRange(len(b), off, n) {
		return nil, false
	}
	return b[off : off+n : off+n], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	return InRange(len(b), off, n)
}

// Clamp forces pos into [lo, hi]. The caller guarantees lo <= hi.
func Clamp(pos, lo, hi int) int {
	switch {
	case pos < lo:
		return lo
	case pos > hi:
		return hi
	default:
		return pos
	}
}
