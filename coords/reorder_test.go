package coords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/tensor"
)

// TestReorderIndices_TruePermutation verifies that the indices form a
// permutation and that applying them then their inverse round-trips an
// aligned sequence.
func TestReorderIndices_TruePermutation(t *testing.T) {
	c, err := coords.FromObs("x", "y", "z")
	require.NoError(t, err)

	idx, err := c.ReorderIndicesByObs([]string{"z", "x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, idx)

	// Apply to an aligned sequence, then invert.
	seq := []string{"first", "second", "third"}
	applied := make([]string, len(seq))
	for i, j := range idx {
		applied[i] = seq[j]
	}
	assert.Equal(t, []string{"third", "first", "second"}, applied)

	inverse := make([]int, len(idx))
	for i, j := range idx {
		inverse[j] = i
	}
	restored := make([]string, len(applied))
	for i, j := range inverse {
		restored[i] = applied[j]
	}
	assert.Equal(t, seq, restored)
}

// TestReorderIndices_RequiresMatchingSets verifies the permutation guard.
func TestReorderIndices_RequiresMatchingSets(t *testing.T) {
	c, err := coords.FromObs("x", "y")
	require.NoError(t, err)

	_, err = c.ReorderIndicesByObs([]string{"x"})
	assert.ErrorIs(t, err, coords.ErrIncompatible)

	_, err = c.ReorderIndicesByObs([]string{"x", "q"})
	assert.ErrorIs(t, err, coords.ErrIncompatible)

	_, err = c.ReorderIndicesByAxes([]int{0, 1})
	assert.ErrorIs(t, err, coords.ErrUnderdefined)

	ca, err := coords.FromAxes(3, 5)
	require.NoError(t, err)
	idx, err := ca.ReorderIndicesByAxes([]int{5, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, idx)
}

// TestReorderPoints_XSide verifies bringing externally-ordered points into
// the Coordinates' own order.
func TestReorderPoints_XSide(t *testing.T) {
	c, err := coords.FromObs("x", "y")
	require.NoError(t, err)

	// Points ordered (y, x); bring them into (x, y).
	x := [][]float64{{10, 1}, {20, 2}}
	got, err := c.ReorderPoints(x, coords.Reorder{XObs: []string{"y", "x"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 10}, {2, 20}}, got)
}

// TestReorderPoints_TargetSide verifies reordering self-ordered points for a
// consumer with a different ordering, and that the two modes invert each
// other.
func TestReorderPoints_TargetSide(t *testing.T) {
	c, err := coords.FromObs("x", "y")
	require.NoError(t, err)

	x := [][]float64{{1, 10}, {2, 20}}
	forTarget, err := c.ReorderPoints(x, coords.Reorder{TargetObs: []string{"y", "x"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 1}, {20, 2}}, forTarget)

	back, err := c.ReorderPoints(forTarget, coords.Reorder{XObs: []string{"y", "x"}})
	require.NoError(t, err)
	assert.Equal(t, x, back)
}

// TestReorderPoints_ByAxes verifies the positional scheme.
func TestReorderPoints_ByAxes(t *testing.T) {
	c, err := coords.FromAxes(0, 1, 2)
	require.NoError(t, err)

	x := [][]float64{{2, 0, 1}}
	got, err := c.ReorderPoints(x, coords.Reorder{XAxes: []int{2, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}}, got)
}

// TestReorderPoints_RequestValidation verifies the exactly-one-side rule,
// the scheme agreement rule, and the width check.
func TestReorderPoints_RequestValidation(t *testing.T) {
	c, err := coords.FromObs("x", "y")
	require.NoError(t, err)
	x := [][]float64{{1, 2}}

	_, err = c.ReorderPoints(x, coords.Reorder{XObs: []string{"y", "x"}, TargetObs: []string{"x", "y"}})
	assert.ErrorIs(t, err, coords.ErrOverdefined)

	_, err = c.ReorderPoints(x, coords.Reorder{})
	assert.ErrorIs(t, err, coords.ErrUnderdefined)

	// Obs-only coordinates cannot serve an axes-only request.
	_, err = c.ReorderPoints(x, coords.Reorder{XAxes: []int{1, 0}})
	assert.ErrorIs(t, err, coords.ErrIncompatible)

	_, err = c.ReorderPoints([][]float64{{1, 2, 3}}, coords.Reorder{XObs: []string{"y", "x"}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
