package space

import (
	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
)

// Region is the closed polymorphic surface over domain representations,
// realized by *Space and *MultiSpace. Downstream code accepts a Region and
// never inspects the concrete variant; the unexported method keeps the set
// of variants closed.
type Region interface {
	// Coordinate identity.
	Coords() *coords.Coordinates
	Dim() int
	HasObs() bool
	HasAxes() bool
	Obs() []string
	Axes() []int

	// Limit state.
	State() limit.State
	HasLimits() bool
	HasRectLimits() bool

	// Box views. Available only on purely rectangular regions.
	RectLimits() (lower, upper []bound.Value, err error)
	RectLower() ([]bound.Value, error)
	RectUpper() ([]bound.Value, error)
	ConcreteRect() (lower, upper []float64, err error)
	RectArea() (float64, error)

	// Membership.
	Inside(x [][]float64, guaranteeLimits bool) ([]bool, error)
	Filter(x [][]float64, guaranteeLimits bool) ([][]float64, error)

	// Coordinate transforms. Each returns a new Region; the receiver is
	// never mutated.
	WithObs(obs []string, m coords.Match) (Region, error)
	WithAxes(axes []int, m coords.Match) (Region, error)
	WithCoords(c *coords.Coordinates, m coords.Match) (Region, error)
	WithAutofillAxes(overwrite bool) (Region, error)
	DropObs() (Region, error)
	DropAxes() (Region, error)
	Subspace(obs []string, axes []int) (Region, error)

	// Algebra.
	Add(others ...Region) (Region, error)
	Combine(others ...Region) (Region, error)

	// Alternatives exposes the union members; a Space is its own sole
	// alternative.
	Alternatives() []*Space

	String() string

	sealed()
}

var (
	_ Region = (*Space)(nil)
	_ Region = (*MultiSpace)(nil)
)
