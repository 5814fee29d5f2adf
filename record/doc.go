// Package record implements record vectors: vectors whose elements are
// tuples drawn from several equal-length, uniquely named fields.
//
// A Record behaves like any other vector. Slicing, assignment, resizing,
// replication and casting are all performed by the generic engine in
// package vector, which reaches the fields through the record's proxy
// frame and hands the result back to Restore:
//
//	r, _ := record.New([]record.Field{
//	    {Name: "a", Vector: vector.Ints(1, 2, 3)},
//	    {Name: "b", Vector: vector.Strings("x", "y", "z")},
//	})
//	r.Len()                                   // 3
//	s, _ := r.Slice(vector.At(1))             // a=[2] b=["y"]
//	m, _ := r.Slice(vector.Mask(true, false, true)) // a=[1 3] b=["x" "z"]
//
// Records are immutable. Every operation returns a new Record built through
// New, so the invariants (at least one field, unique non-blank names, equal
// lengths) hold for every value that exists.
//
// Field names are internal to the record: a record has no element names,
// and named field access is rejected. Concrete record kinds are identified
// by a Class; a class may implement Formatter, MathOperator or RecordCaster
// to override the defaults.
package record
