package view

import (
	"bytes"

	"github.com/joshuapare/viewkit/internal/buf"
)

// Searches are safe operations: positions are clamped rather than rejected and
// a miss is reported as NPos. Substring searches anchor on the needle's first
// byte with a byte scan, then verify the rest. No tables are built, which suits
// the short, ad hoc needles this package is used with.

// IndexByte returns the index of the first c in v, or NPos.
func (v View) IndexByte(c byte) int {
	return bytes.IndexByte(v.b, c)
}

// LastIndexByte returns the index of the last c in v, or NPos.
func (v View) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(v.b, c)
}

// IndexByteFrom returns the index of the first c at or after pos, or NPos.
// pos is clamped to [0, v.Len()].
func (v View) IndexByteFrom(pos int, c byte) int {
	if len(v.b) == 0 {
		return NPos
	}
	pos = buf.Clamp(pos, 0, len(v.b))
	if i := bytes.IndexByte(v.b[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// LastIndexByteFrom returns the index of the last c at or before pos, or NPos.
// pos is clamped to [0, v.Len()-1]; an empty v always yields NPos.
func (v View) LastIndexByteFrom(pos int, c byte) int {
	if len(v.b) == 0 {
		return NPos
	}
	pos = buf.Clamp(pos, 0, len(v.b)-1)
	return bytes.LastIndexByte(v.b[:pos+1], c)
}

// Index returns the lowest index at which needle occurs in v, or NPos.
// An empty needle matches at 0.
func (v View) Index(needle View) int {
	if len(needle.b) == 0 {
		return 0
	}
	if len(needle.b) > len(v.b) {
		return NPos
	}
	return indexFrom(v.b, needle.b, 0)
}

// LastIndex returns the highest index at which needle occurs in v, or NPos.
// An empty needle matches at v.Len().
func (v View) LastIndex(needle View) int {
	if len(needle.b) == 0 {
		return len(v.b)
	}
	if len(needle.b) > len(v.b) {
		return NPos
	}
	return lastIndexBefore(v.b, needle.b, len(v.b)-len(needle.b)+1)
}

// IndexFrom returns the lowest index >= pos at which needle occurs, or NPos.
// pos is clamped to [0, v.Len()]; an empty needle matches at the clamped pos.
func (v View) IndexFrom(pos int, needle View) int {
	pos = buf.Clamp(pos, 0, len(v.b))
	if len(needle.b) == 0 {
		return pos
	}
	if len(needle.b) > len(v.b)-pos {
		return NPos
	}
	return indexFrom(v.b, needle.b, pos)
}

// LastIndexFrom returns the highest index <= pos at which needle occurs, or NPos.
// pos is clamped to [0, v.Len()]; an empty needle matches at the clamped pos.
// A needle that cannot fit in the first pos+1 bytes never matches.
func (v View) LastIndexFrom(pos int, needle View) int {
	pos = buf.Clamp(pos, 0, len(v.b))
	if len(needle.b) == 0 {
		return pos
	}
	if len(needle.b) > len(v.b) || pos+1 < len(needle.b) {
		return NPos
	}
	lastStart := len(v.b) - len(needle.b)
	if pos > lastStart {
		pos = lastStart
	}
	return lastIndexBefore(v.b, needle.b, pos+1)
}

// IndexString is Index with a string needle.
func (v View) IndexString(needle string) int {
	return v.Index(FromString(needle))
}

// LastIndexString is LastIndex with a string needle.
func (v View) LastIndexString(needle string) int {
	return v.LastIndex(FromString(needle))
}

// IndexStringFrom is IndexFrom with a string needle.
func (v View) IndexStringFrom(pos int, needle string) int {
	return v.IndexFrom(pos, FromString(needle))
}

// LastIndexStringFrom is LastIndexFrom with a string needle.
func (v View) LastIndexStringFrom(pos int, needle string) int {
	return v.LastIndexFrom(pos, FromString(needle))
}

// Contains reports whether needle occurs in v. An empty needle is always contained.
func (v View) Contains(needle View) bool {
	return v.Index(needle) != NPos
}

// ContainsString is Contains with a string needle.
func (v View) ContainsString(needle string) bool {
	return v.Contains(FromString(needle))
}

// indexFrom scans candidate starts pos..len(hay)-len(needle).
// The caller guarantees a non-empty needle that fits after pos.
func indexFrom(hay, needle []byte, pos int) int {
	first := needle[0]
	lastStart := len(hay) - len(needle)
	for i := pos; i <= lastStart; {
		j := bytes.IndexByte(hay[i:lastStart+1], first)
		if j < 0 {
			return NPos
		}
		off := i + j
		if bytes.Equal(hay[off:off+len(needle)], needle) {
			return off
		}
		i = off + 1
	}
	return NPos
}

// lastIndexBefore scans candidate starts below limit, highest first.
// The caller guarantees a non-empty needle and limit <= len(hay)-len(needle)+1.
func lastIndexBefore(hay, needle []byte, limit int) int {
	first := needle[0]
	for i := limit; i != 0; {
		off := bytes.LastIndexByte(hay[:i], first)
		if off < 0 {
			return NPos
		}
		if bytes.Equal(hay[off:off+len(needle)], needle) {
			return off
		}
		i = off
	}
	return NPos
}
