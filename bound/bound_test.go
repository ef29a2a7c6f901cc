package bound_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/tensor"
)

// mustBool materializes a comparison outcome that is expected to be decidable.
func mustBool(t *testing.T, b tensor.Bool) bool {
	t.Helper()
	v, err := b.Concrete()
	require.NoError(t, err)

	return v
}

// TestValue_SentinelOrderingTable pins the full total-order surrogate:
// AnyLower below everything, AnyUpper above everything (never ≤, itself
// included), Any true on every ordering relation.
func TestValue_SentinelOrderingTable(t *testing.T) {
	n := bound.Of(1.5)
	cases := []struct {
		name             string
		v, w             bound.Value
		leq, lt, geq, gt bool
	}{
		{"any_vs_number", bound.Any, n, true, true, true, true},
		{"number_vs_any", n, bound.Any, true, true, true, true},
		{"anylower_vs_number", bound.AnyLower, n, true, true, false, false},
		{"number_vs_anylower", n, bound.AnyLower, false, false, true, true},
		{"anyupper_vs_number", bound.AnyUpper, n, false, false, true, true},
		{"number_vs_anyupper", n, bound.AnyUpper, true, true, false, false},
		{"anylower_vs_anyupper", bound.AnyLower, bound.AnyUpper, true, true, false, false},
		{"anyupper_vs_anylower", bound.AnyUpper, bound.AnyLower, false, false, true, true},
		{"anyupper_vs_itself", bound.AnyUpper, bound.AnyUpper, false, false, true, true},
		{"anylower_vs_itself", bound.AnyLower, bound.AnyLower, true, true, false, false},
		{"any_vs_itself", bound.Any, bound.Any, true, true, true, true},
		{"numbers", bound.Of(1), bound.Of(2), true, true, false, false},
		{"numbers_equal", bound.Of(2), bound.Of(2), true, false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.leq, mustBool(t, bound.LessEq(tc.v, tc.w)), "LessEq")
			assert.Equal(t, tc.lt, mustBool(t, bound.Less(tc.v, tc.w)), "Less")
			assert.Equal(t, tc.geq, mustBool(t, bound.GreaterEq(tc.v, tc.w)), "GreaterEq")
			assert.Equal(t, tc.gt, mustBool(t, bound.Greater(tc.v, tc.w)), "Greater")
		})
	}
}

// TestValue_EqualityIsStrictSelfIdentity verifies that a sentinel equals only
// the same sentinel and never a number, while numbers compare by tolerance.
func TestValue_EqualityIsStrictSelfIdentity(t *testing.T) {
	assert.True(t, mustBool(t, bound.Equal(bound.Any, bound.Any)))
	assert.True(t, mustBool(t, bound.Equal(bound.AnyLower, bound.AnyLower)))
	assert.True(t, mustBool(t, bound.Equal(bound.AnyUpper, bound.AnyUpper)))

	assert.False(t, mustBool(t, bound.Equal(bound.Any, bound.AnyLower)))
	assert.False(t, mustBool(t, bound.Equal(bound.AnyUpper, bound.AnyLower)))
	assert.False(t, mustBool(t, bound.Equal(bound.Any, bound.Of(0))))
	assert.False(t, mustBool(t, bound.Equal(bound.Of(math.Inf(-1)), bound.AnyLower)))

	assert.True(t, mustBool(t, bound.Equal(bound.Of(1.0), bound.Of(1.0+1e-12))))
	assert.False(t, mustBool(t, bound.Equal(bound.Of(1.0), bound.Of(1.1))))
}

// TestEqualWithin_CustomTolerance verifies caller-chosen tolerances.
func TestEqualWithin_CustomTolerance(t *testing.T) {
	assert.True(t, mustBool(t, bound.EqualWithin(bound.Of(100), bound.Of(101), 0, 0.05)))
	assert.False(t, mustBool(t, bound.EqualWithin(bound.Of(100), bound.Of(101), 0, 1e-6)))
}

// TestValue_DeferredComparison verifies that comparisons against deferred
// operands defer, while sentinel rules decide without resolution.
func TestValue_DeferredComparison(t *testing.T) {
	ready := false
	d := bound.FromScalar(tensor.Deferred(func() (float64, bool) { return 2, ready }))

	cmp := bound.LessEq(bound.Of(1), d)
	assert.False(t, cmp.Resolved())
	_, err := cmp.Concrete()
	assert.ErrorIs(t, err, tensor.ErrDeferredValue)

	// Sentinels win without touching the unresolved side.
	assert.True(t, mustBool(t, bound.LessEq(bound.AnyLower, d)))
	assert.True(t, mustBool(t, bound.GreaterEq(bound.AnyUpper, d)))

	ready = true
	v, err := cmp.Concrete()
	require.NoError(t, err)
	assert.True(t, v)
}

// TestValue_FloatMapsSentinelsBySide verifies the ∓Inf mapping.
func TestValue_FloatMapsSentinelsBySide(t *testing.T) {
	lo, err := bound.AnyLower.Float(bound.Lower)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lo, -1))

	up, err := bound.AnyUpper.Float(bound.Upper)
	require.NoError(t, err)
	assert.True(t, math.IsInf(up, +1))

	anyLo, err := bound.Any.Float(bound.Lower)
	require.NoError(t, err)
	assert.True(t, math.IsInf(anyLo, -1))
	anyUp, err := bound.Any.Float(bound.Upper)
	require.NoError(t, err)
	assert.True(t, math.IsInf(anyUp, +1))

	_, err = bound.Any.Concrete()
	assert.ErrorIs(t, err, bound.ErrSentinel)
}

// TestFromScalar_CollapsesConcrete verifies that a never-deferred scalar
// becomes a plain concrete Value.
func TestFromScalar_CollapsesConcrete(t *testing.T) {
	v := bound.FromScalar(tensor.Concrete(4.5))
	assert.Equal(t, bound.KindConcrete, v.Kind())

	f, err := v.Concrete()
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)
}

// TestMaterialize_VectorConversion verifies slice materialization and its
// deferred failure mode.
func TestMaterialize_VectorConversion(t *testing.T) {
	vs := []bound.Value{bound.Of(1), bound.AnyUpper}
	fs, err := bound.Materialize(vs, bound.Upper)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, 1.0, fs[0])
	assert.True(t, math.IsInf(fs[1], +1))

	stuck := bound.FromScalar(tensor.Deferred(func() (float64, bool) { return 0, false }))
	_, err = bound.Materialize([]bound.Value{stuck}, bound.Lower)
	assert.ErrorIs(t, err, tensor.ErrDeferredValue)
}

// TestFloats_WrapsVector verifies the convenience constructor.
func TestFloats_WrapsVector(t *testing.T) {
	vs := bound.Floats(0, 1, 2)
	require.Len(t, vs, 3)
	for i, v := range vs {
		f, err := v.Concrete()
		require.NoError(t, err)
		assert.Equal(t, float64(i), f)
	}
}
