package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector is returned when an operation receives a nil vector.
	ErrNilVector = errors.New("vector: nil vector")
	// ErrUnsupportedVector is returned for vectors that neither own their
	// storage nor expose a proxy.
	ErrUnsupportedVector = errors.New("vector: unsupported vector implementation")
	// ErrOutOfBounds is returned when an index position is outside [0, len).
	ErrOutOfBounds = errors.New("vector: index out of bounds")
	// ErrMaskLength is returned when a logical mask does not match the vector length.
	ErrMaskLength = errors.New("vector: mask length mismatch")
	// ErrNotScalar is returned when an element index does not resolve to exactly one position.
	ErrNotScalar = errors.New("vector: index must resolve to exactly one position")
	// ErrSizeMismatch is returned when an assigned value cannot be recycled to the index size.
	ErrSizeMismatch = errors.New("vector: size mismatch")
	// ErrNegativeLength is returned when a negative length is requested.
	ErrNegativeLength = errors.New("vector: negative length")
	// ErrNegativeFactor is returned when a replication factor is negative.
	ErrNegativeFactor = errors.New("vector: negative replication factor")
	// ErrTooLong is returned when a replicated length exceeds MaxLength.
	ErrTooLong = errors.New("vector: length too large")
	// ErrIncompatibleType is returned when two vectors have no common type.
	ErrIncompatibleType = errors.New("vector: incompatible types")
	// ErrLossyCast is returned when a cast would lose information.
	ErrLossyCast = errors.New("vector: lossy cast")
)

// LossyCastError reports the first element that could not be cast without loss.
type LossyCastError struct {
	From     Kind
	To       Kind
	Position int
}

func (e *LossyCastError) Error() string {
	return fmt.Sprintf("vector: lossy cast from %s to %s at position %d", e.From, e.To, e.Position)
}

func (e *LossyCastError) Unwrap() error { return ErrLossyCast }
