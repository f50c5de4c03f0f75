package grid

import "errors"

// Sentinel errors for grid map parsing. All are fatal to the caller;
// cmd/gridrects turns any of these into a one-line stderr diagnostic and
// a non-zero exit code.
var (
	// ErrBadHeader indicates a header field/value token was missing or
	// the literal "map" keyword was absent.
	ErrBadHeader = errors.New("grid: malformed map header")

	// ErrBadType indicates the header's "type" field was present but not
	// "octile".
	ErrBadType = errors.New("grid: map type is not octile")

	// ErrBadDimensions indicates width or height parsed as zero, negative,
	// or non-numeric.
	ErrBadDimensions = errors.New("grid: map has bad dimensions")

	// ErrCellCountMismatch indicates the body did not contain exactly
	// width*height non-whitespace characters.
	ErrCellCountMismatch = errors.New("grid: map has the wrong number of cells")
)
