package view

import "errors"

var (
	// ErrSyntax indicates the input does not match the strict decimal grammar.
	ErrSyntax = errors.New("view: invalid syntax")
	// ErrRange indicates a number outside the target type's range, or a window outside a Mapping.
	ErrRange = errors.New("view: value out of range")
	// ErrNilWriter indicates WriteTo was handed a nil sink.
	ErrNilWriter = errors.New("view: nil writer")
	// ErrClosed indicates a Mapping was used after Close.
	ErrClosed = errors.New("view: mapping closed")
)
