package tensor

import "errors"

var (
	// ErrDeferredValue indicates an attempt to materialize a value whose
	// evaluation context cannot supply it yet.
	ErrDeferredValue = errors.New("tensor: value is not yet concrete")

	// ErrRagged indicates a point batch whose rows differ in length.
	ErrRagged = errors.New("tensor: point rows have differing lengths")

	// ErrShapeMismatch indicates a point width that does not match the
	// declared dimension count.
	ErrShapeMismatch = errors.New("tensor: point width does not match the declared dimension count")

	// ErrLengthMismatch indicates two aligned inputs of differing length.
	ErrLengthMismatch = errors.New("tensor: aligned inputs differ in length")
)

// Panic messages for programmer errors (invalid constructor arguments).
const (
	panicNilResolver = "tensor: nil resolver"
)
