package vector

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Scalar is the set of Go types an atomic Column can hold.
type Scalar interface {
	bool | int64 | float64 | string
}

// Column is an immutable atomic vector.
//
// Missing elements are tracked in a roaring bitmap; the slot in data holds
// the zero value of T.
type Column[T Scalar] struct {
	data    []T
	missing *roaring.Bitmap // nil when no element is missing
}

// NewColumn returns a column holding a copy of data.
func NewColumn[T Scalar](data []T) *Column[T] {
	c := &Column[T]{data: make([]T, len(data))}
	copy(c.data, data)
	return c
}

// Missing returns a column of n missing elements.
func Missing[T Scalar](n int) *Column[T] {
	c := &Column[T]{data: make([]T, n)}
	if n > 0 {
		c.missing = roaring.New()
		c.missing.AddRange(0, uint64(n))
	}
	return c
}

// Bools returns a bool column.
func Bools(v ...bool) *Column[bool] { return NewColumn(v) }

// Ints returns an int64 column.
func Ints(v ...int64) *Column[int64] { return NewColumn(v) }

// Floats returns a float64 column.
func Floats(v ...float64) *Column[float64] { return NewColumn(v) }

// Strings returns a string column.
func Strings(v ...string) *Column[string] { return NewColumn(v) }

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	}
	return KindInvalid
}

// WithMissing returns a copy of c with the given positions marked missing.
// It panics if a position is out of range.
func (c *Column[T]) WithMissing(pos ...int) *Column[T] {
	out := c.clone()
	if len(pos) == 0 {
		return out
	}
	if out.missing == nil {
		out.missing = roaring.New()
	}
	var zero T
	for _, p := range pos {
		if p < 0 || p >= len(out.data) {
			panic(fmt.Sprintf("vector: missing position %d out of range [0,%d)", p, len(out.data)))
		}
		out.data[p] = zero
		out.missing.Add(uint32(p))
	}
	return out
}

// Kind implements Vector.
func (c *Column[T]) Kind() Kind { return kindOf[T]() }

// Len implements Vector.
func (c *Column[T]) Len() int { return len(c.data) }

// IsMissing reports whether element i is missing.
func (c *Column[T]) IsMissing(i int) bool {
	return c.missing != nil && c.missing.Contains(uint32(i))
}

// MissingCount returns the number of missing elements.
func (c *Column[T]) MissingCount() int {
	if c.missing == nil {
		return 0
	}
	return int(c.missing.GetCardinality())
}

// MissingPositions returns the missing positions in ascending order.
func (c *Column[T]) MissingPositions() []int {
	if c.missing == nil {
		return nil
	}
	return toInts(c.missing.ToArray())
}

// Get returns element i and whether it is present.
func (c *Column[T]) Get(i int) (T, bool) {
	return c.data[i], !c.IsMissing(i)
}

// Values returns a copy of the raw elements. Missing slots hold the zero value.
func (c *Column[T]) Values() []T {
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// At returns element i as a Value.
func (c *Column[T]) At(i int) Value {
	if c.IsMissing(i) {
		return Null()
	}
	switch v := any(c.data[i]).(type) {
	case bool:
		return Bool(v)
	case int64:
		return Int(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	}
	return Value{}
}

// Take implements Storage.
func (c *Column[T]) Take(pos []int) (Vector, error) {
	out := &Column[T]{data: make([]T, len(pos))}
	for j, p := range pos {
		if p == Fill {
			out.markMissing(j)
			continue
		}
		if p < 0 || p >= len(c.data) {
			return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, p, len(c.data))
		}
		if c.IsMissing(p) {
			out.markMissing(j)
			continue
		}
		out.data[j] = c.data[p]
	}
	return out, nil
}

// Put implements Storage.
func (c *Column[T]) Put(pos []int, src Vector) (Vector, error) {
	s, ok := src.(*Column[T])
	if !ok {
		return nil, fmt.Errorf("%w: cannot put %T into %s column", ErrIncompatibleType, src, c.Kind())
	}
	if s.Len() != len(pos) {
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrSizeMismatch, len(pos), s.Len())
	}
	out := c.clone()
	var zero T
	for j, p := range pos {
		if p < 0 || p >= len(out.data) {
			return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, p, len(out.data))
		}
		if s.IsMissing(j) {
			out.data[p] = zero
			out.markMissing(p)
			continue
		}
		out.data[p] = s.data[j]
		if out.missing != nil {
			out.missing.Remove(uint32(p))
		}
	}
	return out, nil
}

// Equal implements Equaler. Missing elements compare equal to each other,
// and NaN compares equal to NaN.
func (c *Column[T]) Equal(other Vector) bool {
	o, ok := other.(*Column[T])
	if !ok || o.Len() != c.Len() {
		return false
	}
	for i := range c.data {
		cm, om := c.IsMissing(i), o.IsMissing(i)
		if cm != om {
			return false
		}
		if cm {
			continue
		}
		if c.data[i] != o.data[i] && !bothNaN(c.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Format renders every element; missing elements render as "NA".
func (c *Column[T]) Format() []string {
	out := make([]string, len(c.data))
	for i := range c.data {
		out[i] = c.At(i).Format()
	}
	return out
}

func (c *Column[T]) clone() *Column[T] {
	out := &Column[T]{data: make([]T, len(c.data))}
	copy(out.data, c.data)
	if c.missing != nil && !c.missing.IsEmpty() {
		out.missing = c.missing.Clone()
	}
	return out
}

func (c *Column[T]) markMissing(i int) {
	if c.missing == nil {
		c.missing = roaring.New()
	}
	c.missing.Add(uint32(i))
}

func bothNaN[T Scalar](a, b T) bool {
	x, ok := any(a).(float64)
	if !ok {
		return false
	}
	y := any(b).(float64)
	return math.IsNaN(x) && math.IsNaN(y)
}

func toInts(ids []uint32) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
