package record

import (
	"fmt"
	"strings"

	"github.com/hupe1980/rcrd/vector"
)

// Math applies a numeric operation. Records have no numeric semantics unless
// their class implements MathOperator.
func (r *Record) Math(op string, args ...vector.Vector) (vector.Vector, error) {
	if m, ok := r.class.(MathOperator); ok {
		return m.Math(op, r, args...)
	}
	return nil, r.unsupported(OpMath)
}

// Format renders one string per element using the class Formatter.
func (r *Record) Format() ([]string, error) {
	f, ok := r.class.(Formatter)
	if !ok {
		return nil, fmt.Errorf("%w: format for class %q", ErrNotImplemented, r.class.Name())
	}
	return f.Format(r)
}

// String implements fmt.Stringer.
func (r *Record) String() string {
	if out, err := r.Format(); err == nil {
		return "<" + r.class.Name() + "[" + fmt.Sprint(r.Len()) + "]> " + strings.Join(out, " ")
	}
	return fmt.Sprintf("<%s[%d]> {%s}", r.class.Name(), r.Len(), joinNames(r.FieldNames()))
}
