package treemap

import "errors"

var (
	// ErrUnsupported is returned by Delete on every engine. Deletion is a
	// deliberately absent feature; it fails with a distinct sentinel so
	// callers can tell the gap apart from a missing key.
	ErrUnsupported = errors.New("operation not supported")

	// ErrInvalidDegree is returned when constructing a B-tree with an
	// order below the minimum of 3.
	ErrInvalidDegree = errors.New("invalid degree")
)
