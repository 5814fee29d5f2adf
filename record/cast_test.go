package record

import (
	"testing"

	"github.com/hupe1980/rcrd/frame"
	"github.com/hupe1980/rcrd/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastIdentity(t *testing.T) {
	r := abc(t, WithClass(pairClass{}), WithAttr("unit", "m"))

	got, err := Cast(r, r)
	require.NoError(t, err)
	assert.Same(t, r, got)

	same := abc(t, WithClass(pairClass{}), WithAttr("unit", "m"))
	got, err = Cast(same, r)
	require.NoError(t, err)
	assert.True(t, Equal(r, got))
}

func TestCastFieldwise(t *testing.T) {
	to := mustRecord(t, []Field{
		{Name: "a", Vector: vector.Floats()},
		{Name: "b", Vector: vector.Strings()},
	}, WithClass(pairClass{}), WithAttr("unit", "m"))
	x := mustRecord(t, []Field{
		{Name: "a", Vector: vector.Ints(1, 2)},
		{Name: "b", Vector: vector.Strings("x", "y")},
	}, WithClass(pairClass{}))

	got, err := Cast(x, to)
	require.NoError(t, err)

	wantA, err := vector.Cast(vector.Ints(1, 2), vector.Floats())
	require.NoError(t, err)
	requireFields(t, got,
		Field{Name: "a", Vector: wantA},
		Field{Name: "b", Vector: vector.Strings("x", "y")},
	)
	assert.Equal(t, to.Attrs(), got.Attrs())
	assert.Equal(t, "test_pair", got.Class().Name())
}

func TestCastTakesTargetClass(t *testing.T) {
	x := abc(t)
	to := abc(t, WithClass(NewClass("other")))

	got, err := Cast(x, to)
	require.NoError(t, err)
	assert.Equal(t, "other", got.Class().Name())
}

func TestCastFailures(t *testing.T) {
	to := abc(t)

	tests := []struct {
		name  string
		x     vector.Vector
		cause error
	}{
		{"NonRecord", vector.Ints(1), nil},
		{"Frame", ToFrame(abc(t)), nil},
		{"Nil", nil, vector.ErrNilVector},
		{"MissingField", mustRecord(t, []Field{{Name: "a", Vector: vector.Ints(1)}}), frame.ErrShapeMismatch},
		{"ExtraField", mustRecord(t, []Field{
			{Name: "a", Vector: vector.Ints(1)},
			{Name: "b", Vector: vector.Strings("x")},
			{Name: "c", Vector: vector.Ints(1)},
		}), frame.ErrShapeMismatch},
		{"IncompatibleField", mustRecord(t, []Field{
			{Name: "a", Vector: vector.Strings("1")},
			{Name: "b", Vector: vector.Strings("x")},
		}), vector.ErrIncompatibleType},
		{"LossyField", mustRecord(t, []Field{
			{Name: "a", Vector: vector.Floats(1.5)},
			{Name: "b", Vector: vector.Strings("x")},
		}), vector.ErrLossyCast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cast(tt.x, to)
			assert.ErrorIs(t, err, ErrIncompatibleCast)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			var ce *CastError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestCastWithFillPolicy(t *testing.T) {
	to := abc(t)
	x := mustRecord(t, []Field{{Name: "a", Vector: vector.Ints(5, 6)}})

	got, err := CastWithPolicy(x, to, frame.MatchFill)
	require.NoError(t, err)
	requireFields(t, got,
		Field{Name: "a", Vector: vector.Ints(5, 6)},
		Field{Name: "b", Vector: vector.Missing[string](2)},
	)
}

func TestCastToAtomicFails(t *testing.T) {
	for _, to := range []vector.Vector{vector.Ints(), vector.Strings(), vector.Floats(1)} {
		t.Run(to.Kind().String(), func(t *testing.T) {
			_, err := vector.Cast(abc(t), to)
			require.ErrorIs(t, err, ErrIncompatibleCast)
			assert.ErrorIs(t, err, vector.ErrIncompatibleType)

			var ce *CastError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, to.Kind().String(), ce.To)
		})
	}
}

// upperClass overrides casting by delegating to DefaultCast and tagging the
// result.
type upperClass struct{}

func (upperClass) Name() string { return "test_upper" }

func (upperClass) CastRecord(x, to *Record) (*Record, error) {
	out, err := DefaultCast(x, to, frame.MatchFill)
	if err != nil {
		return nil, err
	}
	return New(out.Fields(), WithClass(to.Class()), WithAttr("hooked", true))
}

func TestCastHook(t *testing.T) {
	to := abc(t, WithClass(upperClass{}))
	x := mustRecord(t, []Field{{Name: "b", Vector: vector.Strings("q")}})

	got, err := Cast(x, to)
	require.NoError(t, err)

	hooked, ok := got.Attr("hooked")
	assert.True(t, ok)
	assert.Equal(t, true, hooked)
	assert.Equal(t, []string{"a", "b"}, got.FieldNames())
}
