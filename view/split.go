package view

// SplitFirst splits v around the first delim. The delimiter belongs to neither
// half. Without a delimiter it returns v, the empty View and false.
func (v View) SplitFirst(delim byte) (before, after View, found bool) {
	return v.splitAt(v.IndexByte(delim))
}

// SplitLast splits v around the last delim, with the same rules as SplitFirst.
func (v View) SplitLast(delim byte) (before, after View, found bool) {
	return v.splitAt(v.LastIndexByte(delim))
}

// SplitOnceFrom splits v around the first delim at or after pos. pos is clamped
// to [0, v.Len()]. before always starts at index 0 of v, so bytes ahead of pos
// stay in the first half.
func (v View) SplitOnceFrom(delim byte, pos int) (before, after View, found bool) {
	return v.splitAt(v.IndexByteFrom(pos, delim))
}

func (v View) splitAt(idx int) (View, View, bool) {
	if idx == NPos {
		return v, View{}, false
	}
	return View{b: v.b[:idx:idx]}, View{b: v.b[idx+1:]}, true
}
