package frame

import "errors"

var (
	// ErrNilColumn is returned when a column has no vector.
	ErrNilColumn = errors.New("frame: column has no vector")
	// ErrLengthMismatch is returned when columns (or row labels) differ in length.
	ErrLengthMismatch = errors.New("frame: columns must have equal length")
	// ErrBlankName is returned for an empty or whitespace-only column name.
	ErrBlankName = errors.New("frame: blank column name")
	// ErrDuplicateName is returned when a column name is used twice.
	ErrDuplicateName = errors.New("frame: duplicate column name")
	// ErrShapeMismatch is returned when two frames do not have compatible columns.
	ErrShapeMismatch = errors.New("frame: incompatible shape")
)
