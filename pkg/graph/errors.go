package graph

import "errors"

// Error kinds reported by kernel operations. Every failure wraps exactly one
// of these sentinels together with a reason; callers branch with errors.Is.
var (
	// ErrNotWellFormed reports an argument that is not an instance of the
	// required type or category (including nil arguments).
	ErrNotWellFormed = errors.New("not well-formed")

	// ErrAlreadyExists reports a duplicate insertion of the same instance.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound reports a removal or query whose target is absent.
	ErrNotFound = errors.New("does not exist")

	// ErrNotClosed reports an edge whose concrete endpoint is not a member
	// node of the target graph.
	ErrNotClosed = errors.New("not closed")

	// ErrBound reports a node removal blocked by an edge that references the
	// node as a concrete endpoint.
	ErrBound = errors.New("bound by an edge")
)
