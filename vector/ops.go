package vector

import "fmt"

// Take returns the elements of v at pos, going through the proxy when v is
// Proxied.
func Take(v Vector, pos []int) (Vector, error) {
	s, restore, err := storageOf(v)
	if err != nil {
		return nil, err
	}
	out, err := s.Take(pos)
	if err != nil {
		return nil, err
	}
	return restore(out)
}

// Put returns v with src written at pos. src must already have v's type.
func Put(v Vector, pos []int, src Vector) (Vector, error) {
	s, restore, err := storageOf(v)
	if err != nil {
		return nil, err
	}
	sp, _, err := storageOf(src)
	if err != nil {
		return nil, err
	}
	out, err := s.Put(pos, sp)
	if err != nil {
		return nil, err
	}
	return restore(out)
}

// Slice returns the elements of v selected by idx.
func Slice(v Vector, idx Index) (Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	pos, err := idx.Resolve(v.Len())
	if err != nil {
		return nil, err
	}
	return Take(v, pos)
}

// Element returns the single element of v selected by idx as a length-1 vector.
func Element(v Vector, idx Index) (Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	pos, err := idx.Resolve(v.Len())
	if err != nil {
		return nil, err
	}
	if len(pos) != 1 {
		return nil, fmt.Errorf("%w: %s selects %d positions", ErrNotScalar, idx, len(pos))
	}
	return Take(v, pos)
}

// Assign returns a copy of v with value written at the positions selected
// by idx. value is cast to v's type first; a length-1 value is recycled.
func Assign(v Vector, idx Index, value Vector) (Vector, error) {
	if v == nil || value == nil {
		return nil, ErrNilVector
	}
	pos, err := idx.Resolve(v.Len())
	if err != nil {
		return nil, err
	}
	return assignAt(v, pos, value)
}

// AssignElement is Assign restricted to an index that selects exactly one position.
func AssignElement(v Vector, idx Index, value Vector) (Vector, error) {
	if v == nil || value == nil {
		return nil, ErrNilVector
	}
	pos, err := idx.Resolve(v.Len())
	if err != nil {
		return nil, err
	}
	if len(pos) != 1 {
		return nil, fmt.Errorf("%w: %s selects %d positions", ErrNotScalar, idx, len(pos))
	}
	return assignAt(v, pos, value)
}

func assignAt(v Vector, pos []int, value Vector) (Vector, error) {
	cast, err := Cast(value, v)
	if err != nil {
		return nil, err
	}
	switch n := cast.Len(); {
	case n == len(pos):
	case n == 1:
		if cast, err = Take(cast, make([]int, len(pos))); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrSizeMismatch, len(pos), n)
	}
	return Put(v, pos, cast)
}

// Resize returns v truncated or padded to n elements. Padding uses the
// vector's fill value.
func Resize(v Vector, n int) (Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	pos := make([]int, n)
	size := v.Len()
	for i := range pos {
		if i < size {
			pos[i] = i
		} else {
			pos[i] = Fill
		}
	}
	return Take(v, pos)
}

// Repeat replicates v according to p.
func Repeat(v Vector, p Pattern) (Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	pos, err := p.Resolve(v.Len())
	if err != nil {
		return nil, err
	}
	return Take(v, pos)
}

// Equal reports whether a and b have the same kind, length and elements.
func Equal(a, b Vector) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	return false
}
