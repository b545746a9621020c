package seq

import "errors"

var (
	// ErrIndexOutOfBounds flags a position outside [0, Len()].
	ErrIndexOutOfBounds = errors.New("seq: index out of bounds")

	// ErrIllegalArguments flags calls with inconsistent arguments.
	ErrIllegalArguments = errors.New("seq: illegal arguments")
)
