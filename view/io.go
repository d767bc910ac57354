package view

import "io"

// WriteTo writes the raw bytes of v to w, with no terminator or conversion.
// Partial writes are retried until every byte is accepted; a write that makes
// no progress fails with io.ErrShortWrite. It implements io.WriterTo.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}
	var total int64
	p := v.b
	for len(p) > 0 {
		n, err := w.Write(p)
		total += int64(n)
		p = p[n:]
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// CopyCString copies v into dst and NUL-terminates it. If dst is too small the
// copy is silently truncated to len(dst)-1 bytes. It returns the number of
// bytes copied, not counting the terminator. An empty dst receives nothing.
func (v View) CopyCString(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], v.b)
	dst[n] = 0
	return n
}

// String returns a copy of the bytes in v as a string.
func (v View) String() string {
	return string(v.b)
}
