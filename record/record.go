package record

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/hupe1980/rcrd/frame"
	"github.com/hupe1980/rcrd/vector"
)

// Field is one named component vector of a record.
type Field = frame.Column

// Attrs holds extra key/value attributes carried by a record.
type Attrs map[string]any

// Record is an immutable record vector.
type Record struct {
	proxy *frame.Frame
	class Class
	attrs Attrs
}

type options struct {
	class Class
	attrs Attrs
}

// Option configures New.
type Option func(*options)

// WithClass sets the record's class. Nil means Base.
func WithClass(c Class) Option {
	return func(o *options) {
		o.class = c
	}
}

// WithAttrs adds the given attributes.
func WithAttrs(attrs Attrs) Option {
	return func(o *options) {
		if len(attrs) == 0 {
			return
		}
		if o.attrs == nil {
			o.attrs = make(Attrs, len(attrs))
		}
		maps.Copy(o.attrs, attrs)
	}
}

// WithAttr adds a single attribute.
func WithAttr(key string, value any) Option {
	return WithAttrs(Attrs{key: value})
}

// New builds a record from fields.
//
// Checks run in order: at least one field (ErrEmptyFields), equal lengths
// (ErrInvalidFieldLengths), unique non-blank names after trimming
// (ErrDuplicateOrBlankFieldName). Either every check passes or no record is
// returned. The field slice is copied; vectors are immutable and shared.
func New(fields []Field, opts ...Option) (*Record, error) {
	o := options{class: Base}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.class == nil {
		o.class = Base
	}

	if len(fields) == 0 {
		return nil, &ConstructionError{Reason: ErrEmptyFields}
	}
	if err := checkLengths(fields); err != nil {
		return nil, err
	}

	proxy, err := frame.New(fields)
	if err != nil {
		if errors.Is(err, frame.ErrBlankName) || errors.Is(err, frame.ErrDuplicateName) {
			return nil, &ConstructionError{Reason: ErrDuplicateOrBlankFieldName, Detail: err.Error(), cause: err}
		}
		return nil, &ConstructionError{Reason: ErrInvalidFieldLengths, Detail: err.Error(), cause: err}
	}

	r := &Record{proxy: proxy, class: o.class}
	if len(o.attrs) > 0 {
		r.attrs = maps.Clone(o.attrs)
	}
	return r, nil
}

func checkLengths(fields []Field) error {
	lengths := make([]string, len(fields))
	equal := true
	for i, f := range fields {
		if f.Vector == nil {
			return &ConstructionError{Reason: ErrInvalidFieldLengths, Detail: fmt.Sprintf("field %q has no vector", f.Name)}
		}
		n := f.Vector.Len()
		lengths[i] = fmt.Sprint(n)
		if n != fields[0].Vector.Len() {
			equal = false
		}
	}
	if !equal {
		return &ConstructionError{Reason: ErrInvalidFieldLengths, Detail: "lengths " + strings.Join(lengths, ", ")}
	}
	return nil
}

// Kind implements vector.Vector.
func (r *Record) Kind() vector.Kind { return vector.KindRecord }

// Len implements vector.Vector. It is the shared length of every field.
func (r *Record) Len() int { return r.proxy.Len() }

// Class returns the record's class.
func (r *Record) Class() Class { return r.class }

// Attrs returns a copy of the record's extra attributes.
func (r *Record) Attrs() Attrs {
	if r.attrs == nil {
		return nil
	}
	return maps.Clone(r.attrs)
}

// Attr returns a single attribute.
func (r *Record) Attr(key string) (any, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// FieldNames returns the field names in order.
func (r *Record) FieldNames() []string { return r.proxy.Names() }

// Fields returns a copy of the whole field collection.
func (r *Record) Fields() []Field { return r.proxy.Columns() }

// Width returns the number of fields.
func (r *Record) Width() int { return r.proxy.Width() }

// Equal implements vector.Equaler: same class, attributes, field names and
// field values.
func (r *Record) Equal(other vector.Vector) bool {
	o, ok := other.(*Record)
	if !ok {
		return false
	}
	if !sameClass(r.class, o.class) || !reflect.DeepEqual(r.attrs, o.attrs) {
		return false
	}
	return r.proxy.Equal(o.proxy)
}

// Equal reports whether a and b are semantically equal records.
func Equal(a, b *Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
