package fingertree

import "errors"

var (
	// ErrIndexOutOfBounds flags a split or query position outside [0, size].
	ErrIndexOutOfBounds = errors.New("fingertree: index out of bounds")
	// ErrAllocationFailed flags an Allocator refusing to provide storage for
	// new nodes. The operation that received it has not changed any input tree.
	ErrAllocationFailed = errors.New("fingertree: node allocation failed")
)
