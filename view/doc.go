// Package view provides View, a non-owning reference to a byte range, and
// allocation-free operations over it: search, split, trim, strict numeric
// parsing and hashing.
//
// A View is a (start, length) descriptor. It never copies, owns or frees the
// bytes it references, so constructing and slicing Views costs nothing. The
// caller keeps the memory alive and unmodified while any View over it is in use.
// Views are plain values and may be shared between goroutines for reading.
//
// # Strict and Safe Operations
//
// Two contracts run through the API.
//
// Strict operations (At, First, Last, Substr, FromParts and the Take/Drop
// families) require in-range arguments. A violation is a programming error and
// panics with a "view:" message; it is never reported as a value.
//
// Safe operations (searches, splits, parsers) validate their own input.
// Out-of-range positions are clamped into [0, Len()], a search miss returns
// NPos, and a parse failure returns ErrSyntax or ErrRange with a zero value.
//
// # Searching
//
//	v := view.FromString("banana")
//	v.IndexStringFrom(2, "ana")     // 3
//	v.LastIndexStringFrom(2, "ana") // 1
//	v.IndexString("")               // 0
//	v.LastIndexString("")           // 6
//
// # Parsing
//
// Numbers are parsed in base 10 only, without whitespace, base prefixes,
// separators or the tokens inf and nan:
//
//	n, err := view.FromString("-9223372036854775808").ParseInt64() // math.MinInt64, nil
//	f, err := view.FromString("1.8e308").ParseFloat64()            // 0, ErrRange
//
// # Consuming
//
// The consume family shrinks a View in place while handing the removed bytes
// to the caller, which suits hand-written tokenizers:
//
//	line := view.FromString("GET /index.html HTTP/1.1")
//	method := line.TakeAndConsume(line.IndexByte(' '))
//	line.DropAndConsume(1)
//
// # Files
//
// Map exposes a file as a View without reading it through a buffer. Views over
// a Mapping are valid until Mapping.Close.
package view
