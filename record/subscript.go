package record

import (
	"fmt"

	"github.com/hupe1980/rcrd/vector"
)

// Names always returns nil: record elements are never named.
func (r *Record) Names() []string { return nil }

// SetNames attaches element names. Only an empty set is accepted, and it
// returns r unchanged.
func (r *Record) SetNames(names []string) (*Record, error) {
	if len(names) == 0 {
		return r, nil
	}
	return nil, r.unsupported(OpNamesAssign)
}

// Slice returns the elements selected by idx. No argument selects every
// element; more than one argument fails with DimensionError.
func (r *Record) Slice(idx ...vector.Index) (*Record, error) {
	var i vector.Index
	switch len(idx) {
	case 0:
	case 1:
		i = idx[0]
	default:
		return nil, &DimensionError{Dims: len(idx)}
	}
	out, err := vector.Slice(r, i)
	if err != nil {
		return nil, fmt.Errorf("record: slice %s: %w", i, err)
	}
	return out.(*Record), nil
}

// Element returns the single element selected by idx as a length-1 record.
func (r *Record) Element(idx vector.Index) (*Record, error) {
	out, err := vector.Element(r, idx)
	if err != nil {
		return nil, fmt.Errorf("record: element %s: %w", idx, err)
	}
	return out.(*Record), nil
}

// Assign returns a copy of r with v written at the elements selected by idx.
// The zero Index selects every element. v is first cast to r's shape; a
// length-1 value is recycled.
func (r *Record) Assign(idx vector.Index, v vector.Vector) (*Record, error) {
	out, err := vector.Assign(r, idx, v)
	if err != nil {
		return nil, fmt.Errorf("record: assign %s: %w", idx, err)
	}
	return out.(*Record), nil
}

// AssignElement is Assign for an index that selects exactly one element.
func (r *Record) AssignElement(idx vector.Index, v vector.Vector) (*Record, error) {
	out, err := vector.AssignElement(r, idx, v)
	if err != nil {
		return nil, fmt.Errorf("record: assign element %s: %w", idx, err)
	}
	return out.(*Record), nil
}

// Resize returns r truncated or padded to n elements. Every field is resized
// in lock-step; padding uses each field's own missing value.
func (r *Record) Resize(n int) (*Record, error) {
	out, err := vector.Resize(r, n)
	if err != nil {
		return nil, fmt.Errorf("record: resize to %d: %w", n, err)
	}
	return out.(*Record), nil
}

// Repeat replicates every field with the same pattern.
func (r *Record) Repeat(p vector.Pattern) (*Record, error) {
	out, err := vector.Repeat(r, p)
	if err != nil {
		return nil, fmt.Errorf("record: %s: %w", p, err)
	}
	return out.(*Record), nil
}

// FieldByName is not supported: fields are internal to the record.
func (r *Record) FieldByName(string) (vector.Vector, error) {
	return nil, r.unsupported(OpFieldAccess)
}

// WithField is not supported: fields are internal to the record.
func (r *Record) WithField(string, vector.Vector) (*Record, error) {
	return nil, r.unsupported(OpFieldAssign)
}

func (r *Record) unsupported(op Op) error {
	return &UnsupportedOperationError{Op: op, Class: r.class.Name()}
}
