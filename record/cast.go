package record

import (
	"errors"
	"strings"

	"github.com/hupe1980/rcrd/frame"
	"github.com/hupe1980/rcrd/vector"
)

// Cast converts x to the shape of to using frame.MatchExact: x must be a
// record with exactly the field names of to, and every field must cast
// losslessly. The result has to's class, field order and attributes.
//
// Casting a record to itself returns it unchanged.
func Cast(x vector.Vector, to *Record) (*Record, error) {
	return CastWithPolicy(x, to, frame.MatchExact)
}

// CastWithPolicy is Cast with an explicit field-name policy. A RecordCaster
// hook on to's class takes precedence over the policy.
func CastWithPolicy(x vector.Vector, to *Record, policy frame.Policy) (*Record, error) {
	if x == nil {
		return nil, &CastError{From: "nil", To: describe(to), cause: vector.ErrNilVector}
	}
	xr, ok := x.(*Record)
	if !ok {
		return nil, &CastError{From: x.Kind().String(), To: describe(to)}
	}
	if xr == to {
		return to, nil
	}
	if hook, ok := to.class.(RecordCaster); ok {
		return hook.CastRecord(xr, to)
	}
	return DefaultCast(xr, to, policy)
}

// DefaultCast is the hook-free cast: the field collections are cast with
// frame.Cast and the result is wrapped with to's class and attributes.
func DefaultCast(x, to *Record, policy frame.Policy) (*Record, error) {
	casted, err := frame.Cast(x.proxy, to.proxy, policy)
	if err != nil {
		return nil, &CastError{From: describe(x), To: describe(to), cause: err}
	}
	out, err := FromFrame(casted, to)
	if err != nil {
		var ce *CastError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &CastError{From: describe(x), To: describe(to), cause: err}
	}
	return out, nil
}

// CastFrom implements vector.Caster, so the engine casts values assigned
// into a record through Cast.
func (r *Record) CastFrom(x vector.Vector) (vector.Vector, error) {
	out, err := Cast(x, r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CastTo implements vector.CastSource. A record only casts to another
// record, which is handled by CastFrom on the target.
func (r *Record) CastTo(to vector.Vector) (vector.Vector, error) {
	return nil, &CastError{
		From:  describe(r),
		To:    to.Kind().String(),
		cause: vector.ErrIncompatibleType,
	}
}

func joinNames(names []string) string { return strings.Join(names, ",") }
