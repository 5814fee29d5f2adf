package record

import (
	"fmt"

	"github.com/hupe1980/rcrd/frame"
	"github.com/hupe1980/rcrd/vector"
)

// ToFrame returns the record's proxy: a frame whose columns are exactly the
// record's fields, in order, with one row per element and no row labels.
func ToFrame(r *Record) *frame.Frame { return r.proxy }

// FromFrame re-wraps a frame as a record shaped like template: field names,
// class and attributes come from template, vectors come from f in column
// order. Row labels on f are discarded.
func FromFrame(f *frame.Frame, template *Record) (*Record, error) {
	if f.Width() != template.Width() {
		return nil, &CastError{
			From:  fmt.Sprintf("frame with %d columns", f.Width()),
			To:    describe(template),
			cause: frame.ErrShapeMismatch,
		}
	}
	names := template.proxy.Names()
	fields := make([]Field, f.Width())
	for i := range fields {
		fields[i] = Field{Name: names[i], Vector: f.Column(i).Vector}
	}
	return New(fields, WithClass(template.class), WithAttrs(template.attrs))
}

// Proxy implements vector.Proxied.
func (r *Record) Proxy() vector.Storage { return r.proxy }

// Restore implements vector.Proxied. The result has r's class, field names
// and attributes.
func (r *Record) Restore(proxy vector.Vector) (vector.Vector, error) {
	f, ok := proxy.(*frame.Frame)
	if !ok {
		return nil, &CastError{From: proxy.Kind().String(), To: describe(r)}
	}
	out, err := FromFrame(f, r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func describe(r *Record) string {
	return fmt.Sprintf("%s<%s>", r.class.Name(), joinNames(r.proxy.Names()))
}
