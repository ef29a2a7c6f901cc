package coords

import "errors"

var (
	// ErrUnderdefined indicates that neither obs nor axes were specified
	// where at least one addressing scheme is required.
	ErrUnderdefined = errors.New("coords: neither obs nor axes specified")

	// ErrIncompatible indicates dimension identifiers that cannot be
	// reconciled: mismatched obs/axes lengths, unknown identifiers, or a
	// set deviation the Match flags do not permit.
	ErrIncompatible = errors.New("coords: incompatible dimension identifiers")

	// ErrDuplicate indicates a repeated identifier within one scheme.
	ErrDuplicate = errors.New("coords: duplicate dimension identifier")

	// ErrOverdefined indicates a reorder request naming both the current
	// ordering of x and a target ordering at once.
	ErrOverdefined = errors.New("coords: conflicting reorder request")
)

// Match controls how far a requested dimension set may deviate from the
// current one when re-expressing Coordinates. The zero value demands an
// exact permutation.
type Match uint8

const (
	// MatchExact requires the requested set to equal the current set.
	MatchExact Match = 0
	// MatchSuperset allows the request to contain extra dimensions; they
	// are ignored and the current dimensions are ordered as requested.
	MatchSuperset Match = 1 << iota
	// MatchSubset allows the request to omit dimensions; the result
	// shrinks to the requested ones.
	MatchSubset
)

// superset reports whether extra requested dimensions are permitted.
func (m Match) superset() bool { return m&MatchSuperset != 0 }

// subset reports whether omitted dimensions are permitted.
func (m Match) subset() bool { return m&MatchSubset != 0 }

// Reorder describes one ReorderPoints request: either the ordering the data
// currently follows (X side: it will be brought into the Coordinates'
// order) or the ordering it should be brought into (Target side: the data
// is assumed to follow the Coordinates' order). Exactly one side must be
// set. When a side carries both obs and axes, obs win if the Coordinates
// define obs.
type Reorder struct {
	XObs       []string
	XAxes      []int
	TargetObs  []string
	TargetAxes []int
}
