package view

import "bytes"

// Equal reports whether v and o hold the same bytes. Addresses are not compared;
// all empty Views are equal.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.b, o.b)
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return string(v.b) == s
}

// EqualBytes reports whether v holds exactly the bytes of b.
// A nil b never compares equal, not even to the empty View.
func (v View) EqualBytes(b []byte) bool {
	if b == nil {
		return false
	}
	return bytes.Equal(v.b, b)
}

// EqualCString compares v against b up to its first NUL byte.
// A nil b never compares equal.
func (v View) EqualCString(b []byte) bool {
	if b == nil {
		return false
	}
	return v.Equal(FromCString(b))
}

// Compare returns -1, 0 or +1 depending on the lexicographic byte order of v and o.
func (v View) Compare(o View) int {
	return bytes.Compare(v.b, o.b)
}

// HasPrefix reports whether v begins with prefix. A prefix longer than v is never matched.
func (v View) HasPrefix(prefix View) bool {
	return len(prefix.b) <= len(v.b) && bytes.Equal(v.b[:len(prefix.b)], prefix.b)
}

// HasSuffix reports whether v ends with suffix. A suffix longer than v is never matched.
func (v View) HasSuffix(suffix View) bool {
	return len(suffix.b) <= len(v.b) && bytes.Equal(v.b[len(v.b)-len(suffix.b):], suffix.b)
}

// HasPrefixString is HasPrefix with a string prefix.
func (v View) HasPrefixString(prefix string) bool {
	return v.HasPrefix(FromString(prefix))
}

// HasSuffixString is HasSuffix with a string suffix.
func (v View) HasSuffixString(suffix string) bool {
	return v.HasSuffix(FromString(suffix))
}
