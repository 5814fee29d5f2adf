package vector

import (
	"fmt"
	"math"
)

// Cast converts x to the type of to.
//
// If to implements Caster the decision is delegated to it, then to x if it
// implements CastSource. Otherwise both vectors must be atomic and the
// conversion must be lossless:
//
//	bool  -> int, float
//	int   -> float (exactly representable), bool (0 or 1)
//	float -> int (integral and in range), bool (0 or 1)
//	string -> string
//
// Missing elements stay missing.
func Cast(x, to Vector) (Vector, error) {
	if x == nil || to == nil {
		return nil, ErrNilVector
	}
	if c, ok := to.(Caster); ok {
		return c.CastFrom(x)
	}
	if c, ok := x.(CastSource); ok {
		return c.CastTo(to)
	}
	if !x.Kind().Atomic() || !to.Kind().Atomic() {
		return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrIncompatibleType, x.Kind(), to.Kind())
	}
	return castAtomic(x, to.Kind())
}

func castAtomic(x Vector, to Kind) (Vector, error) {
	if x.Kind() == to {
		return x, nil
	}
	switch src := x.(type) {
	case *Column[bool]:
		switch to {
		case KindInt:
			return convert(src, to, func(b bool) (int64, bool) { return boolToInt(b), true })
		case KindFloat:
			return convert(src, to, func(b bool) (float64, bool) { return float64(boolToInt(b)), true })
		}
	case *Column[int64]:
		switch to {
		case KindFloat:
			return convert(src, to, func(i int64) (float64, bool) {
				f := float64(i)
				return f, f < math.MaxInt64 && int64(f) == i
			})
		case KindBool:
			return convert(src, to, func(i int64) (bool, bool) { return i == 1, i == 0 || i == 1 })
		}
	case *Column[float64]:
		switch to {
		case KindInt:
			return convert(src, to, func(f float64) (int64, bool) {
				if math.IsNaN(f) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
					return 0, false
				}
				return int64(f), true
			})
		case KindBool:
			return convert(src, to, func(f float64) (bool, bool) { return f == 1, f == 0 || f == 1 })
		}
	}
	return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrIncompatibleType, x.Kind(), to)
}

func convert[S, D Scalar](src *Column[S], to Kind, f func(S) (D, bool)) (*Column[D], error) {
	out := &Column[D]{data: make([]D, len(src.data))}
	for i, v := range src.data {
		if src.IsMissing(i) {
			out.markMissing(i)
			continue
		}
		d, ok := f(v)
		if !ok {
			return nil, &LossyCastError{From: src.Kind(), To: to, Position: i}
		}
		out.data[i] = d
	}
	return out, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
