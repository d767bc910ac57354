package view

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/joshuapare/viewkit/internal/buf"
)

// NPos is the position returned by searches that find nothing.
// It is distinct from every valid index.
const NPos = -1

// View is a non-owning, read-only reference to a contiguous byte range.
//
// The zero value is the empty View. A View never copies, owns or frees the
// memory it references; the caller keeps that memory alive and unmodified for
// as long as the View (and every View derived from it) is in use.
type View struct {
	b []byte
}

// Empty returns the empty View.
func Empty() View {
	return View{}
}

// FromBytes returns a View over b. No bytes are copied.
func FromBytes(b []byte) View {
	return View{b: b[:len(b):len(b)]}
}

// FromString returns a View over the bytes of s. No bytes are copied.
func FromString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromParts returns a View over the first n bytes of b.
// It panics unless 0 <= n <= len(b).
func FromParts(b []byte, n int) View {
	s, ok := buf.Slice(b, 0, n)
	if !ok {
		panic(fmt.Sprintf("view: FromParts length %d out of range [0, %d]", n, len(b)))
	}
	return View{b: s}
}

// FromCString returns a View over b up to, but excluding, its first NUL byte.
// Without a NUL the whole of b is used. A nil b yields the empty View.
func FromCString(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return FromBytes(b)
}

// Len returns the number of bytes in v.
func (v View) Len() int { return len(v.b) }

// IsEmpty reports whether v has length zero.
func (v View) IsEmpty() bool { return len(v.b) == 0 }

// At returns the byte at index i. It panics unless 0 <= i < v.Len().
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		panic(fmt.Sprintf("view: index %d out of range [0, %d)", i, len(v.b)))
	}
	return v.b[i]
}

// First returns the first byte. It panics if v is empty.
func (v View) First() byte {
	if len(v.b) == 0 {
		panic("view: First on empty view")
	}
	return v.b[0]
}

// Last returns the last byte. It panics if v is empty.
func (v View) Last() byte {
	if len(v.b) == 0 {
		panic("view: Last on empty view")
	}
	return v.b[len(v.b)-1]
}

// Substr returns the View [pos, pos+count).
// It panics unless 0 <= pos <= v.Len() and 0 <= count <= v.Len()-pos.
func (v View) Substr(pos, count int) View {
	return View{b: v.mustSlice("Substr", pos, count)}
}

// mustSlice enforces the contract of strict operations. A violation is a
// programming error and is reported by panicking before any state changes.
func (v View) mustSlice(op string, pos, count int) []byte {
	s, ok := buf.Slice(v.b, pos, count)
	if !ok {
		panic(fmt.Sprintf("view: %s(%d, %d) out of range for length %d", op, pos, count, len(v.b)))
	}
	return s
}
