package render

import "errors"

// Domain errors for renderer construction and output.
var (
	// ErrUnknownMode indicates a glyph mode name outside the closed set.
	ErrUnknownMode = errors.New("render: unknown glyph mode")

	// ErrShapeMismatch indicates a frame whose shape differs from the
	// frames already stored in an output history.
	ErrShapeMismatch = errors.New("render: frame shape differs from stored history")

	// ErrBadRetention indicates a negative retention bound.
	ErrBadRetention = errors.New("render: retention bound must be >= 0")
)
