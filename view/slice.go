package view

// asciiSpace marks the bytes trimmed by the Trim family: the C locale
// whitespace set (space, \t, \n, \v, \f, \r).
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// IsSpace reports whether c is trimmed by TrimLeft and TrimRight.
func IsSpace(c byte) bool {
	return asciiSpace[c]
}

// TrimLeft returns v without leading whitespace.
func (v View) TrimLeft() View {
	i := 0
	for i < len(v.b) && asciiSpace[v.b[i]] {
		i++
	}
	return View{b: v.b[i:]}
}

// TrimRight returns v without trailing whitespace.
func (v View) TrimRight() View {
	n := len(v.b)
	for n > 0 && asciiSpace[v.b[n-1]] {
		n--
	}
	return View{b: v.b[:n:n]}
}

// Trim returns v without leading and trailing whitespace.
func (v View) Trim() View {
	return v.TrimLeft().TrimRight()
}

// Take returns the first n bytes of v. It panics unless 0 <= n <= v.Len().
func (v View) Take(n int) View {
	return View{b: v.mustSlice("Take", 0, n)}
}

// Drop returns v without its first n bytes. It panics unless 0 <= n <= v.Len().
func (v View) Drop(n int) View {
	return View{b: v.mustSlice("Drop", n, len(v.b)-n)}
}

// TakeLast returns the last n bytes of v. It panics unless 0 <= n <= v.Len().
func (v View) TakeLast(n int) View {
	return View{b: v.mustSlice("TakeLast", len(v.b)-n, n)}
}

// DropLast returns v without its last n bytes. It panics unless 0 <= n <= v.Len().
func (v View) DropLast(n int) View {
	return View{b: v.mustSlice("DropLast", 0, len(v.b)-n)}
}

// The consume family shrinks the receiver in place, handing the removed range
// to the caller. The range check runs before *v is touched, so a panicking
// call leaves the receiver unchanged. Calls on a shared *View need external
// synchronization.

// TakeAndConsume returns the first n bytes and advances v past them.
func (v *View) TakeAndConsume(n int) View {
	head := v.Take(n)
	v.b = v.b[n:]
	return head
}

// DropAndConsume advances v past its first n bytes and returns the new v.
func (v *View) DropAndConsume(n int) View {
	*v = v.Drop(n)
	return *v
}

// TakeLastAndConsume returns the last n bytes and shrinks v to exclude them.
func (v *View) TakeLastAndConsume(n int) View {
	tail := v.TakeLast(n)
	v.b = v.b[: len(v.b)-n : len(v.b)-n]
	return tail
}

// DropLastAndConsume shrinks v by its last n bytes and returns the new v.
func (v *View) DropLastAndConsume(n int) View {
	*v = v.DropLast(n)
	return *v
}
