package view

import (
	"unsafe"

	"golang.org/x/text/encoding"
)

// Bytes returns the referenced bytes without copying. The slice aliases the
// caller's memory and must be treated as read-only.
func (v View) Bytes() []byte {
	return v.b
}

// UnsafeString returns the referenced bytes as a string without copying.
// The string is only valid while the underlying memory is alive and unmodified;
// for a View over a Mapping that ends at Close.
func (v View) UnsafeString() string {
	if len(v.b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(v.b), len(v.b))
}

// Decode converts the bytes of v from a legacy encoding, such as
// charmap.Windows1252, into a UTF-8 string. Unlike every other View method it
// allocates; View operations themselves treat content as opaque bytes.
func (v View) Decode(enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(v.b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
