package ir

import "errors"

var (
	// ErrBadAccess is returned by strict typed getters applied to a value
	// of the wrong kind, and by writes through unbound references.
	ErrBadAccess = errors.New("bad access")

	// ErrPath is returned for malformed object path expressions.
	ErrPath = errors.New("invalid path")
)
