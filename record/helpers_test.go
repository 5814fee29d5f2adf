package record

import (
	"strings"
	"testing"

	"github.com/hupe1980/rcrd/vector"
	"github.com/stretchr/testify/require"
)

// pairClass is a minimal class used in tests. It renders every element as
// its field values joined with ":".
type pairClass struct{}

func (pairClass) Name() string { return "test_pair" }

func (pairClass) Format(r *Record) ([]string, error) {
	fields := r.Fields()
	cols := make([][]string, len(fields))
	for i, f := range fields {
		fv, ok := f.Vector.(interface{ Format() []string })
		if !ok {
			return nil, ErrNotImplemented
		}
		cols[i] = fv.Format()
	}
	out := make([]string, r.Len())
	for j := range out {
		parts := make([]string, len(cols))
		for i := range cols {
			parts[i] = cols[i][j]
		}
		out[j] = strings.Join(parts, ":")
	}
	return out, nil
}

func mustRecord(t *testing.T, fields []Field, opts ...Option) *Record {
	t.Helper()
	r, err := New(fields, opts...)
	require.NoError(t, err)
	return r
}

// abc is the record {a: [1,2,3], b: ["x","y","z"]}.
func abc(t *testing.T, opts ...Option) *Record {
	t.Helper()
	return mustRecord(t, []Field{
		{Name: "a", Vector: vector.Ints(1, 2, 3)},
		{Name: "b", Vector: vector.Strings("x", "y", "z")},
	}, opts...)
}

func requireFields(t *testing.T, r *Record, want ...Field) {
	t.Helper()
	got := r.Fields()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Name, got[i].Name)
		require.True(t, vector.Equal(want[i].Vector, got[i].Vector), "field %q: got %v", want[i].Name, got[i].Vector)
	}
}
