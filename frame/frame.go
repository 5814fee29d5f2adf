package frame

import (
	"fmt"

	"github.com/hupe1980/rcrd/vector"
)

// Column is one named column of a Frame.
type Column struct {
	Name   string
	Vector vector.Vector
}

// Frame is an immutable collection of equal-length named columns.
type Frame struct {
	cols     []Column
	rows     int
	rowNames []string
}

type options struct {
	rows     int
	hasRows  bool
	rowNames []string
}

// Option configures New.
type Option func(*options)

// WithRows sets the row count. It is required for frames without columns
// and checked against the column length otherwise.
func WithRows(n int) Option {
	return func(o *options) {
		o.rows, o.hasRows = n, true
	}
}

// WithRowNames attaches row labels.
func WithRowNames(names []string) Option {
	return func(o *options) {
		o.rowNames = append([]string(nil), names...)
	}
}

// New validates cols and returns a Frame holding a copy of them.
func New(cols []Column, opts ...Option) (*Frame, error) {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	rows := o.rows
	for i, c := range cols {
		if c.Vector == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilColumn, c.Name)
		}
		if i == 0 && !o.hasRows {
			rows = c.Vector.Len()
		}
		if c.Vector.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", ErrLengthMismatch, c.Name, c.Vector.Len(), rows)
		}
	}
	if rows < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", ErrLengthMismatch, rows)
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	names, err := CheckNames(names)
	if err != nil {
		return nil, err
	}

	if o.rowNames != nil && len(o.rowNames) != rows {
		return nil, fmt.Errorf("%w: %d row names for %d rows", ErrLengthMismatch, len(o.rowNames), rows)
	}

	f := &Frame{cols: make([]Column, len(cols)), rows: rows, rowNames: o.rowNames}
	for i, c := range cols {
		f.cols[i] = Column{Name: names[i], Vector: c.Vector}
	}
	return f, nil
}

// Kind implements vector.Vector.
func (f *Frame) Kind() vector.Kind { return vector.KindFrame }

// Len implements vector.Vector. It is the number of rows.
func (f *Frame) Len() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns a copy of the column list.
func (f *Frame) Columns() []Column {
	return append([]Column(nil), f.cols...)
}

// Column returns column i.
func (f *Frame) Column(i int) Column { return f.cols[i] }

// Lookup returns the column called name.
func (f *Frame) Lookup(name string) (vector.Vector, bool) {
	for _, c := range f.cols {
		if c.Name == name {
			return c.Vector, true
		}
	}
	return nil, false
}

// RowNames returns the row labels, or nil when the frame has none.
func (f *Frame) RowNames() []string {
	if f.rowNames == nil {
		return nil
	}
	return append([]string(nil), f.rowNames...)
}

// WithoutRowNames returns f without row labels.
func (f *Frame) WithoutRowNames() *Frame {
	if f.rowNames == nil {
		return f
	}
	return &Frame{cols: f.cols, rows: f.rows}
}

// Take implements vector.Storage. Row labels follow their rows; Fill rows
// get an empty label.
func (f *Frame) Take(pos []int) (vector.Vector, error) {
	out := &Frame{cols: make([]Column, len(f.cols)), rows: len(pos)}
	for i, c := range f.cols {
		v, err := vector.Take(c.Vector, pos)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		out.cols[i] = Column{Name: c.Name, Vector: v}
	}
	if f.rowNames != nil {
		out.rowNames = make([]string, len(pos))
		for j, p := range pos {
			if p >= 0 && p < len(f.rowNames) {
				out.rowNames[j] = f.rowNames[p]
			}
		}
	}
	return out, nil
}

// Put implements vector.Storage. src must be a Frame with the same column
// names in the same order.
func (f *Frame) Put(pos []int, src vector.Vector) (vector.Vector, error) {
	s, ok := src.(*Frame)
	if !ok {
		return nil, fmt.Errorf("%w: cannot put %T into a frame", ErrShapeMismatch, src)
	}
	if err := sameNames(f, s); err != nil {
		return nil, err
	}
	out := &Frame{cols: make([]Column, len(f.cols)), rows: f.rows, rowNames: f.rowNames}
	for i, c := range f.cols {
		v, err := vector.Put(c.Vector, pos, s.cols[i].Vector)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		out.cols[i] = Column{Name: c.Name, Vector: v}
	}
	return out, nil
}

// Equal implements vector.Equaler.
func (f *Frame) Equal(other vector.Vector) bool {
	o, ok := other.(*Frame)
	if !ok || o.rows != f.rows || len(o.cols) != len(f.cols) {
		return false
	}
	if (f.rowNames == nil) != (o.rowNames == nil) {
		return false
	}
	for i := range f.rowNames {
		if f.rowNames[i] != o.rowNames[i] {
			return false
		}
	}
	for i, c := range f.cols {
		if c.Name != o.cols[i].Name || !vector.Equal(c.Vector, o.cols[i].Vector) {
			return false
		}
	}
	return true
}

// CastFrom implements vector.Caster using MatchExact.
func (f *Frame) CastFrom(x vector.Vector) (vector.Vector, error) {
	xf, ok := x.(*Frame)
	if !ok {
		return nil, fmt.Errorf("%w: cannot cast %s to frame", ErrShapeMismatch, x.Kind())
	}
	return Cast(xf, f, MatchExact)
}

func sameNames(a, b *Frame) error {
	if len(a.cols) != len(b.cols) {
		return fmt.Errorf("%w: %d columns vs %d", ErrShapeMismatch, len(a.cols), len(b.cols))
	}
	for i := range a.cols {
		if a.cols[i].Name != b.cols[i].Name {
			return fmt.Errorf("%w: column %d is %q vs %q", ErrShapeMismatch, i, a.cols[i].Name, b.cols[i].Name)
		}
	}
	return nil
}
