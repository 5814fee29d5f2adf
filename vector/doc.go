// Package vector is the generic vector engine used by frames and records.
//
// A vector is anything with a Kind and a length. Atomic vectors (Column)
// own their elements directly; composite vectors either own a set of
// columns (frame.Frame) or expose a Proxy that the engine operates on and
// then hands back to Restore (record.Record). The engine functions below
// never need to know which of the two they are dealing with:
//
//   - Slice, Element: read by Index
//   - Assign, AssignElement: cast, recycle and write by Index
//   - Resize: truncate or pad with the per-type fill value
//   - Repeat: replicate by a shared Pattern
//   - Cast: lossless, type-directed conversion
//
// Example:
//
//	v := vector.Ints(1, 2, 3)
//	s, _ := vector.Slice(v, vector.Except(0))        // [2 3]
//	r, _ := vector.Repeat(v, vector.Times(2))        // [1 2 3 1 2 3]
//	p, _ := vector.Resize(v, 5)                      // [1 2 3 NA NA]
//	a, _ := vector.Assign(v, vector.At(1), vector.Bools(true)) // [1 1 3]
//
// All operations return new vectors; inputs are never modified.
package vector
