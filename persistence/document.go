package persistence

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/rcrd/record"
	"github.com/hupe1980/rcrd/vector"
)

// Document is the codec-friendly form of a record.
type Document struct {
	Class  string             `json:"class"`
	Attrs  map[string]AttrDoc `json:"attrs,omitempty"`
	Len    int                `json:"len"`
	Fields []FieldDoc         `json:"fields"`
}

// AttrDoc is one record attribute tagged with its Go type. Numbers are kept
// as strings so integers and non-finite floats survive the codec exactly.
// Values of other types are stored as-is and decode to whatever the codec
// produces for them.
type AttrDoc struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// FieldDoc is one field of a Document. Exactly one of the value slices (or
// Record) is used, depending on Kind.
type FieldDoc struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	Bools   []bool    `json:"bools,omitempty"`
	Ints    []int64   `json:"ints,omitempty"`
	Floats  []float64 `json:"floats,omitempty"`
	Strings []string  `json:"strings,omitempty"`
	Missing []int     `json:"missing,omitempty"`
	Record  *Document `json:"record,omitempty"`

	// Positions of non-finite floats. The matching Floats entries are zero.
	NaN    []int `json:"nan,omitempty"`
	PosInf []int `json:"posinf,omitempty"`
	NegInf []int `json:"neginf,omitempty"`
}

// FromRecord converts r into a Document.
func FromRecord(r *record.Record) (*Document, error) {
	doc := &Document{
		Class:  r.Class().Name(),
		Attrs:  encodeAttrs(r.Attrs()),
		Len:    r.Len(),
		Fields: make([]FieldDoc, r.Width()),
	}
	for i, f := range r.Fields() {
		fd := FieldDoc{Name: f.Name, Kind: f.Vector.Kind().String()}
		switch v := f.Vector.(type) {
		case *vector.Column[bool]:
			fd.Bools, fd.Missing = v.Values(), v.MissingPositions()
		case *vector.Column[int64]:
			fd.Ints, fd.Missing = v.Values(), v.MissingPositions()
		case *vector.Column[float64]:
			fd.Floats, fd.Missing = v.Values(), v.MissingPositions()
			fd.splitNonFinite()
		case *vector.Column[string]:
			fd.Strings, fd.Missing = v.Values(), v.MissingPositions()
		case *record.Record:
			nested, err := FromRecord(v)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fd.Record = nested
		default:
			return nil, fmt.Errorf("%w: field %q is %s", ErrUnsupportedKind, f.Name, f.Vector.Kind())
		}
		doc.Fields[i] = fd
	}
	return doc, nil
}

// Record rebuilds the record. The class is resolved with record.ClassByName,
// so registered classes get their hooks back.
func (d *Document) Record() (*record.Record, error) {
	attrs, err := decodeAttrs(d.Attrs)
	if err != nil {
		return nil, err
	}
	fields := make([]record.Field, len(d.Fields))
	for i, fd := range d.Fields {
		v, err := fd.vector(d.Len)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		fields[i] = record.Field{Name: fd.Name, Vector: v}
	}
	return record.New(fields,
		record.WithClass(record.ClassByName(d.Class)),
		record.WithAttrs(attrs),
	)
}

func (fd FieldDoc) vector(n int) (vector.Vector, error) {
	switch vector.ParseKind(fd.Kind) {
	case vector.KindBool:
		return withMissing(vector.NewColumn(pad(fd.Bools, n)), fd.Missing)
	case vector.KindInt:
		return withMissing(vector.NewColumn(pad(fd.Ints, n)), fd.Missing)
	case vector.KindFloat:
		floats, err := fd.joinNonFinite(pad(fd.Floats, n))
		if err != nil {
			return nil, err
		}
		return withMissing(vector.NewColumn(floats), fd.Missing)
	case vector.KindString:
		return withMissing(vector.NewColumn(pad(fd.Strings, n)), fd.Missing)
	case vector.KindRecord:
		if fd.Record == nil {
			return nil, fmt.Errorf("%w: record field without record", ErrUnsupportedKind)
		}
		return fd.Record.Record()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, fd.Kind)
	}
}

// pad restores empty slices dropped by omitempty for all-zero-length fields.
func pad[T vector.Scalar](v []T, n int) []T {
	if v == nil && n == 0 {
		return []T{}
	}
	return v
}

func withMissing[T vector.Scalar](c *vector.Column[T], missing []int) (vector.Vector, error) {
	for _, p := range missing {
		if p < 0 || p >= c.Len() {
			return nil, fmt.Errorf("%w: missing position %d, length %d", vector.ErrOutOfBounds, p, c.Len())
		}
	}
	return c.WithMissing(missing...), nil
}

// splitNonFinite moves NaN and infinities out of Floats, which JSON cannot carry.
func (fd *FieldDoc) splitNonFinite() {
	for i, f := range fd.Floats {
		switch {
		case math.IsNaN(f):
			fd.NaN = append(fd.NaN, i)
		case math.IsInf(f, 1):
			fd.PosInf = append(fd.PosInf, i)
		case math.IsInf(f, -1):
			fd.NegInf = append(fd.NegInf, i)
		default:
			continue
		}
		fd.Floats[i] = 0
	}
}

func (fd FieldDoc) joinNonFinite(floats []float64) ([]float64, error) {
	if len(fd.NaN)+len(fd.PosInf)+len(fd.NegInf) == 0 {
		return floats, nil
	}
	out := make([]float64, len(floats))
	copy(out, floats)
	for _, set := range []struct {
		pos []int
		val float64
	}{
		{fd.NaN, math.NaN()},
		{fd.PosInf, math.Inf(1)},
		{fd.NegInf, math.Inf(-1)},
	} {
		for _, p := range set.pos {
			if p < 0 || p >= len(out) {
				return nil, fmt.Errorf("%w: non-finite position %d, length %d", vector.ErrOutOfBounds, p, len(out))
			}
			out[p] = set.val
		}
	}
	return out, nil
}

func encodeAttrs(attrs record.Attrs) map[string]AttrDoc {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]AttrDoc, len(attrs))
	for k, v := range attrs {
		var ad AttrDoc
		switch x := v.(type) {
		case nil:
			ad = AttrDoc{Type: "null"}
		case bool:
			ad = AttrDoc{Type: "bool", Value: x}
		case string:
			ad = AttrDoc{Type: "string", Value: x}
		case int:
			ad = AttrDoc{Type: "int", Value: strconv.FormatInt(int64(x), 10)}
		case int32:
			ad = AttrDoc{Type: "int32", Value: strconv.FormatInt(int64(x), 10)}
		case int64:
			ad = AttrDoc{Type: "int64", Value: strconv.FormatInt(x, 10)}
		case uint64:
			ad = AttrDoc{Type: "uint64", Value: strconv.FormatUint(x, 10)}
		case float32:
			ad = AttrDoc{Type: "float32", Value: strconv.FormatFloat(float64(x), 'g', -1, 32)}
		case float64:
			ad = AttrDoc{Type: "float64", Value: strconv.FormatFloat(x, 'g', -1, 64)}
		default:
			ad = AttrDoc{Type: "any", Value: x}
		}
		out[k] = ad
	}
	return out
}

func decodeAttrs(docs map[string]AttrDoc) (record.Attrs, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make(record.Attrs, len(docs))
	for k, ad := range docs {
		v, err := ad.decode()
		if err != nil {
			return nil, fmt.Errorf("attr %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func (ad AttrDoc) decode() (any, error) {
	switch ad.Type {
	case "null":
		return nil, nil
	case "any":
		return ad.Value, nil
	case "bool":
		if b, ok := ad.Value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("%w: %v is not a bool", ErrInvalidValue, ad.Value)
	}

	s, ok := ad.Value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s attribute %v is not a string", ErrInvalidValue, ad.Type, ad.Value)
	}
	var (
		v   any
		err error
	)
	switch ad.Type {
	case "string":
		return s, nil
	case "int":
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		v = int(n)
	case "int32":
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		v = int32(n)
	case "int64":
		v, err = strconv.ParseInt(s, 10, 64)
	case "uint64":
		v, err = strconv.ParseUint(s, 10, 64)
	case "float32":
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case "float64":
		v, err = strconv.ParseFloat(s, 64)
	default:
		return nil, fmt.Errorf("%w: attribute type %q", ErrInvalidValue, ad.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return v, nil
}
