package vector

import "fmt"

// Fill is the position passed to Storage.Take to request the vector's
// missing (fill) value instead of an existing element.
const Fill = -1

// Vector is the minimal contract shared by every vector-like value.
type Vector interface {
	Kind() Kind
	Len() int
}

// Storage is a vector that owns its elements and can be indexed directly.
//
// Both methods return new values; the receiver is never modified.
type Storage interface {
	Vector
	// Take returns the elements at pos. Fill positions yield missing values.
	Take(pos []int) (Vector, error)
	// Put returns a copy with src written at pos. src has the receiver's
	// concrete type and len(pos) elements.
	Put(pos []int, src Vector) (Vector, error)
}

// Proxied is a vector whose elements live in a proxy Storage.
//
// The engine never interprets a proxied vector directly: it operates on
// Proxy() and hands the result back to Restore.
type Proxied interface {
	Vector
	Proxy() Storage
	Restore(proxy Vector) (Vector, error)
}

// Caster is implemented by vectors that own the casting of other vectors
// into their own type.
type Caster interface {
	CastFrom(x Vector) (Vector, error)
}

// CastSource is implemented by vectors that decide how they are cast into a
// target that is not a Caster.
type CastSource interface {
	CastTo(to Vector) (Vector, error)
}

// Equaler is implemented by vectors that can compare themselves element-wise.
type Equaler interface {
	Equal(other Vector) bool
}

func identity(v Vector) (Vector, error) { return v, nil }

func storageOf(v Vector) (Storage, func(Vector) (Vector, error), error) {
	switch t := v.(type) {
	case nil:
		return nil, nil, ErrNilVector
	case Proxied:
		return t.Proxy(), t.Restore, nil
	case Storage:
		return t, identity, nil
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedVector, v)
	}
}
