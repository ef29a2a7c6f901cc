package space_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/space"
	"github.com/katalvlaran/obspace/tensor"
)

// WorkflowSuite exercises multi-step region workflows end to end.
type WorkflowSuite struct {
	suite.Suite
}

// TestBuildFilterProject walks a domain from construction through
// reordered filtering to a one-dimensional projection.
func (s *WorkflowSuite) TestBuildFilterProject() {
	domain, err := space.New(
		space.WithObs("mass", "angle"),
		space.WithRect([]float64{5.0, -1}, []float64{5.6, 1}),
	)
	require.NoError(s.T(), err)

	flipped, err := domain.WithObs([]string{"angle", "mass"}, coords.MatchExact)
	require.NoError(s.T(), err)
	kept, err := flipped.Filter([][]float64{{0.2, 5.3}, {0.2, 4.9}}, false)
	require.NoError(s.T(), err)
	require.Len(s.T(), kept, 1)

	proj, err := domain.Subspace([]string{"mass"}, nil)
	require.NoError(s.T(), err)
	lo, up, err := proj.ConcreteRect()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{5.0}, lo)
	require.Equal(s.T(), []float64{5.6}, up)
}

// TestUnionRoundTrip verifies that a union compares equal to the same
// union assembled in the opposite member order.
func (s *WorkflowSuite) TestUnionRoundTrip() {
	first := rect(s.T(), []string{"x"}, []float64{0}, []float64{1})
	second := rect(s.T(), []string{"x"}, []float64{2}, []float64{3})

	forward, err := first.Add(second)
	require.NoError(s.T(), err)
	backward, err := second.Add(first)
	require.NoError(s.T(), err)

	verdict, err := space.Equal(forward, backward, false)
	require.NoError(s.T(), err)
	same, err := verdict.Concrete()
	require.NoError(s.T(), err)
	require.True(s.T(), same)
}

// TestCrossProductThenCarve combines disjoint axes and carves one back out.
func (s *WorkflowSuite) TestCrossProductThenCarve() {
	x := rect(s.T(), []string{"x"}, []float64{0}, []float64{1})
	y := rect(s.T(), []string{"y"}, []float64{0}, []float64{2})
	z := rect(s.T(), []string{"z"}, []float64{0}, []float64{3})

	combined, err := space.CombineSpaces(x, y, z)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"x", "y", "z"}, combined.Obs())

	carved, err := combined.Subspace([]string{"y"}, nil)
	require.NoError(s.T(), err)
	lo, up, err := carved.ConcreteRect()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0}, lo)
	require.Equal(s.T(), []float64{2}, up)
}

// TestDeferredEdgeLifecycle drives a comparison from blocked to decided
// as a deferred bound becomes available.
func (s *WorkflowSuite) TestDeferredEdgeLifecycle() {
	ready := false
	edge := bound.FromScalar(tensor.Deferred(func() (float64, bool) { return 1, ready }))
	pending, err := space.New(
		space.WithObs("x"),
		space.WithRectBounds([]bound.Value{bound.Of(0)}, []bound.Value{edge}),
	)
	require.NoError(s.T(), err)
	settled := rect(s.T(), []string{"x"}, []float64{0}, []float64{1})

	_, err = space.Equal(pending, settled, false)
	require.True(s.T(), errors.Is(err, space.ErrDeferredComparison))

	verdict, err := space.Equal(pending, settled, true)
	require.NoError(s.T(), err)
	require.False(s.T(), verdict.Resolved())

	ready = true
	same, err := verdict.Concrete()
	require.NoError(s.T(), err)
	require.True(s.T(), same)
}

// Entry point for running the suite.
func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowSuite))
}
