package record

import (
	"errors"
	"testing"

	"github.com/hupe1980/rcrd/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr error
		wantLen int
	}{
		{
			"Valid",
			[]Field{{"a", vector.Ints(1, 2, 3)}, {"b", vector.Strings("x", "y", "z")}},
			nil, 3,
		},
		{
			"SingleField",
			[]Field{{"a", vector.Bools(true)}},
			nil, 1,
		},
		{
			"ZeroLength",
			[]Field{{"a", vector.Ints()}, {"b", vector.Strings()}},
			nil, 0,
		},
		{"Empty", nil, ErrEmptyFields, 0},
		{
			"UnequalLengths",
			[]Field{{"a", vector.Ints(1, 2, 3)}, {"b", vector.Ints(1, 2)}},
			ErrInvalidFieldLengths, 0,
		},
		{
			"NilVector",
			[]Field{{"a", nil}},
			ErrInvalidFieldLengths, 0,
		},
		{
			"DuplicateName",
			[]Field{{"a", vector.Ints(1)}, {"a", vector.Ints(2)}},
			ErrDuplicateOrBlankFieldName, 0,
		},
		{
			"BlankName",
			[]Field{{"", vector.Ints(1)}},
			ErrDuplicateOrBlankFieldName, 0,
		},
		{
			"WhitespaceName",
			[]Field{{"a", vector.Ints(1)}, {"\t", vector.Ints(2)}},
			ErrDuplicateOrBlankFieldName, 0,
		},
		{
			"LengthsCheckedBeforeNames",
			[]Field{{"a", vector.Ints(1)}, {"a", vector.Ints(1, 2)}},
			ErrInvalidFieldLengths, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)

				var ce *ConstructionError
				assert.ErrorAs(t, err, &ce)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
			assert.Equal(t, vector.KindRecord, r.Kind())
		})
	}
}

func TestNewCopiesFieldSlice(t *testing.T) {
	fields := []Field{{Name: "a", Vector: vector.Ints(1)}}
	r := mustRecord(t, fields)
	fields[0].Name = "changed"

	assert.Equal(t, []string{"a"}, r.FieldNames())
}

func TestClassAndAttrs(t *testing.T) {
	r := abc(t, WithClass(pairClass{}), WithAttrs(Attrs{"unit": "m"}), WithAttr("scale", 2))

	assert.Equal(t, "test_pair", r.Class().Name())
	assert.Equal(t, Attrs{"unit": "m", "scale": 2}, r.Attrs())

	v, ok := r.Attr("unit")
	assert.True(t, ok)
	assert.Equal(t, "m", v)

	attrs := r.Attrs()
	attrs["unit"] = "km"
	v, _ = r.Attr("unit")
	assert.Equal(t, "m", v)

	plain := abc(t, WithClass(nil))
	assert.Equal(t, Base, plain.Class())
	assert.Nil(t, plain.Attrs())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(abc(t), abc(t)))
	assert.False(t, Equal(abc(t), abc(t, WithClass(pairClass{}))))
	assert.False(t, Equal(abc(t), abc(t, WithAttr("k", "v"))))
	assert.False(t, Equal(abc(t), nil))
	assert.True(t, Equal(nil, nil))
	assert.False(t, abc(t).Equal(vector.Ints(1, 2, 3)))
}

func TestErrorTypes(t *testing.T) {
	var uo *UnsupportedOperationError
	err := error(&UnsupportedOperationError{Op: OpMath, Class: "x"})
	assert.True(t, errors.As(err, &uo))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "math")

	err = &DimensionError{Dims: 2}
	assert.ErrorIs(t, err, ErrIndexDimension)

	err = &CastError{From: "a", To: "b"}
	assert.ErrorIs(t, err, ErrIncompatibleCast)
	assert.Equal(t, "record: cannot cast a to b", err.Error())
}
