package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrCapacityExceeded indicates growth beyond the buffer's maximum capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidCodepoint indicates a codepoint the buffer's encoding cannot represent.
	ErrInvalidCodepoint = errors.New("codepoint not representable in encoding")

	// ErrMalformed indicates input that is not well-formed in its encoding.
	ErrMalformed = errors.New("malformed input")

	// ErrOffsetOutOfRange indicates an insertion offset outside the buffer.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrReleased indicates an operation on a released buffer.
	ErrReleased = errors.New("buffer released")

	// ErrFixedBacking indicates an attempt to free caller-provided memory.
	ErrFixedBacking = errors.New("buffer has fixed backing")
)
