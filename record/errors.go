package record

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFields is returned when a record is built without fields.
	ErrEmptyFields = errors.New("record: at least one field is required")
	// ErrInvalidFieldLengths is returned when fields differ in length.
	ErrInvalidFieldLengths = errors.New("record: fields must have equal length")
	// ErrDuplicateOrBlankFieldName is returned when field names are not unique and non-blank.
	ErrDuplicateOrBlankFieldName = errors.New("record: field names must be unique and non-blank")
	// ErrUnsupportedOperation is returned for operations that have no meaning for records.
	ErrUnsupportedOperation = errors.New("record: unsupported operation")
	// ErrIndexDimension is returned when more than one index dimension is supplied.
	ErrIndexDimension = errors.New("record: records are one-dimensional")
	// ErrIncompatibleCast is returned when a value cannot be cast to a record shape.
	ErrIncompatibleCast = errors.New("record: incompatible cast")
	// ErrNotImplemented is returned when a class does not provide a required hook.
	ErrNotImplemented = errors.New("record: not implemented")
	// ErrClassRegistered is returned when a different class is registered under an existing name.
	ErrClassRegistered = errors.New("record: class already registered")
)

// ConstructionError reports why a record could not be built.
//
// Reason is one of ErrEmptyFields, ErrInvalidFieldLengths or
// ErrDuplicateOrBlankFieldName.
type ConstructionError struct {
	Reason error
	Detail string
	cause  error
}

func (e *ConstructionError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}
	return e.Reason.Error() + ": " + e.Detail
}

func (e *ConstructionError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.cause}
}

// Op names an operation rejected by UnsupportedOperationError.
type Op string

const (
	// OpMath is arithmetic or math on a record.
	OpMath Op = "math"
	// OpFieldAccess is reading a field by name.
	OpFieldAccess Op = "field access"
	// OpFieldAssign is replacing a field by name.
	OpFieldAssign Op = "field assignment"
	// OpNamesAssign is attaching element names.
	OpNamesAssign Op = "names assignment"
)

// UnsupportedOperationError reports an operation a record does not support.
type UnsupportedOperationError struct {
	Op    Op
	Class string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("record: %s is not supported for class %q", e.Op, e.Class)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }

// DimensionError is returned when a record is indexed with more than one dimension.
type DimensionError struct {
	Dims int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("record: records are one-dimensional, got %d index arguments", e.Dims)
}

func (e *DimensionError) Unwrap() error { return ErrIndexDimension }

// CastError reports a failed cast to a record shape.
//
// The underlying engine or frame error (if any) can be reached via errors.Is
// and errors.As.
type CastError struct {
	From  string
	To    string
	cause error
}

func (e *CastError) Error() string {
	msg := fmt.Sprintf("record: cannot cast %s to %s", e.From, e.To)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *CastError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrIncompatibleCast}
	}
	return []error{ErrIncompatibleCast, e.cause}
}
