package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obspace/tensor"
)

// TestCheckPoints_Shapes verifies rectangularity and width validation.
func TestCheckPoints_Shapes(t *testing.T) {
	ok := [][]float64{{1, 2}, {3, 4}}
	require.NoError(t, tensor.CheckPoints(ok, 2))
	require.NoError(t, tensor.CheckPoints(ok, 0)) // width not declared
	require.NoError(t, tensor.CheckPoints(nil, 3))

	assert.ErrorIs(t, tensor.CheckPoints([][]float64{{1, 2}, {3}}, 2), tensor.ErrRagged)
	assert.ErrorIs(t, tensor.CheckPoints(ok, 3), tensor.ErrShapeMismatch)
}

// TestColumn_Lifts1D verifies the (n,1) promotion of a 1-D sample.
func TestColumn_Lifts1D(t *testing.T) {
	got := tensor.Column(1, 2, 3)
	assert.Equal(t, [][]float64{{1}, {2}, {3}}, got)
	assert.Empty(t, tensor.Column())
}

// TestGatherCols_PicksAndReorders verifies last-axis gather.
func TestGatherCols_PicksAndReorders(t *testing.T) {
	x := [][]float64{{1, 2, 3}, {4, 5, 6}}

	got, err := tensor.GatherCols(x, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {6, 4}}, got)

	_, err = tensor.GatherCols(x, []int{3})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestConcatCols_JoinsLastAxis verifies last-axis concatenation and its
// row-count guard.
func TestConcatCols_JoinsLastAxis(t *testing.T) {
	a := [][]float64{{1}, {2}}
	b := [][]float64{{10, 11}, {20, 21}}

	got, err := tensor.ConcatCols(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 10, 11}, {2, 20, 21}}, got)

	_, err = tensor.ConcatCols(a, [][]float64{{1}})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
}

// TestMaskRows_FiltersWithoutAliasing verifies boolean masking and that the
// result owns its rows.
func TestMaskRows_FiltersWithoutAliasing(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	got, err := tensor.MaskRows(x, []bool{true, false, true})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {5, 6}}, got)

	got[0][0] = 99
	assert.Equal(t, 1.0, x[0][0])

	_, err = tensor.MaskRows(x, []bool{true})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
}

// TestMasks_ElementwiseCombination verifies AndMask/OrMask.
func TestMasks_ElementwiseCombination(t *testing.T) {
	a := []bool{true, true, false}
	b := []bool{true, false, false}

	and, err := tensor.AndMask(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, and)

	or, err := tensor.OrMask(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, or)

	_, err = tensor.AndMask(a, []bool{true})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
	_, err = tensor.OrMask(a, []bool{true})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
}
