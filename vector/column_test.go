package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "string"},
		{KindFrame, "frame"},
		{KindRecord, "record"},
		{Kind(99), "invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
		if tt.kind != Kind(99) {
			assert.Equal(t, tt.kind, ParseKind(tt.expected))
		}
	}
}

func TestColumnKinds(t *testing.T) {
	assert.Equal(t, KindBool, Bools(true).Kind())
	assert.Equal(t, KindInt, Ints(1).Kind())
	assert.Equal(t, KindFloat, Floats(1).Kind())
	assert.Equal(t, KindString, Strings("a").Kind())
}

func TestNewColumnCopiesInput(t *testing.T) {
	data := []int64{1, 2, 3}
	c := NewColumn(data)
	data[0] = 100

	v, ok := c.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestColumnMissing(t *testing.T) {
	c := Ints(1, 2, 3).WithMissing(1)

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.IsMissing(1))
	assert.False(t, c.IsMissing(0))
	assert.Equal(t, 1, c.MissingCount())
	assert.Equal(t, []int{1}, c.MissingPositions())
	assert.True(t, c.At(1).IsNull())
	assert.Equal(t, Int(3), c.At(2))
	assert.Equal(t, []string{"1", "NA", "3"}, c.Format())

	m := Missing[string](2)
	assert.Equal(t, 2, m.MissingCount())
	assert.Equal(t, []string{"NA", "NA"}, m.Format())

	assert.Panics(t, func() { Ints(1).WithMissing(5) })
}

func TestColumnTake(t *testing.T) {
	c := Strings("x", "y", "z").WithMissing(2)

	out, err := c.Take([]int{2, 0, Fill, 0})
	require.NoError(t, err)

	col := out.(*Column[string])
	assert.Equal(t, []string{"NA", "x", "NA", "x"}, col.Format())

	_, err = c.Take([]int{3})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestColumnPut(t *testing.T) {
	c := Floats(1, 2, 3).WithMissing(0)

	out, err := c.Put([]int{0, 2}, Floats(10, 0).WithMissing(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "2", "NA"}, out.(*Column[float64]).Format())

	// Receiver is untouched.
	assert.Equal(t, []string{"NA", "2", "3"}, c.Format())

	_, err = c.Put([]int{0}, Ints(1))
	assert.ErrorIs(t, err, ErrIncompatibleType)

	_, err = c.Put([]int{0, 1}, Floats(1))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestColumnEqual(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name  string
		a, b  Vector
		equal bool
	}{
		{"Same", Ints(1, 2), Ints(1, 2), true},
		{"DifferentValue", Ints(1, 2), Ints(1, 3), false},
		{"DifferentLength", Ints(1, 2), Ints(1), false},
		{"DifferentKind", Ints(1), Floats(1), false},
		{"MissingBoth", Ints(1, 2).WithMissing(0), Ints(5, 2).WithMissing(0), true},
		{"MissingOne", Ints(1, 2).WithMissing(0), Ints(1, 2), false},
		{"NaN", Floats(nan), Floats(nan), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
		})
	}
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "null", Null().Key())
	assert.Equal(t, "i:7", Int(7).Key())
	assert.Equal(t, "s:abc", String("abc").Key())
	assert.Equal(t, "b:1", Bool(true).Key())
	assert.Equal(t, "b:0", Bool(false).Key())
	assert.Equal(t, String("abc"), String("abc"))
}

func TestValueJSON(t *testing.T) {
	for _, v := range []Value{Null(), Int(3), Float(1.5), String("hi"), Bool(true)} {
		data, err := v.MarshalJSON()
		require.NoError(t, err)

		var got Value
		require.NoError(t, got.UnmarshalJSON(data))
		assert.Equal(t, v, got)
	}
}
