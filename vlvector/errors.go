package vlvector

import (
	"errors"
	"fmt"
)

// Sentinel errors for Vector operations. Match them with errors.Is; messages
// returned by methods carry the operation name and offending values.
var (
	// ErrIndex indicates an element access outside [0, Size()).
	ErrIndex = errors.New("vlvector: index out of range")

	// ErrPosition indicates an insert or erase position outside the window
	// the operation accepts. No element is moved when it is returned.
	ErrPosition = errors.New("vlvector: invalid position")

	// ErrRange indicates a malformed iterator or offset range: last precedes
	// first, or the two ends belong to different containers or directions.
	ErrRange = errors.New("vlvector: invalid range")

	// ErrAllocation indicates that a heap buffer could not be obtained.
	// The container is left exactly as it was before the call.
	ErrAllocation = errors.New("vlvector: allocation failed")

	// ErrInvalidated indicates use of an iterator after an operation that
	// relocated or shifted the container's elements.
	ErrInvalidated = errors.New("vlvector: iterator invalidated")

	// ErrNilVector indicates that a nil *Vector was passed where a source
	// container is required.
	ErrNilVector = errors.New("vlvector: nil vector")

	// ErrNegativeCount indicates a negative element count for Fill.
	ErrNegativeCount = errors.New("vlvector: negative count")
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// outside reports value as lying outside the half-open or closed window
// described by bounds, attached to sentinel.
func outside(sentinel error, value int, bounds string) error {
	return fmt.Errorf("%w: %d not in %s", sentinel, value, bounds)
}
