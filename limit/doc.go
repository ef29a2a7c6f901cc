// Package limit models the leaf of the domain algebra: one rectangular or
// predicate-shaped region over a fixed number of dimensions.
//
// What
//
//	A Limit is one of three states:
//	  - Unset:   nothing recorded yet (a question still open),
//	  - Absent:  explicitly "no region" (a decided negative),
//	  - Defined: an actual region with per-dimension bounds.
//	Defined limits come in two shapes. A rectangular limit is an axis-aligned
//	box given by lower/upper bound vectors. A predicate limit is an arbitrary
//	row-wise membership function paired with a mandatory rectangular hull that
//	encloses it; the hull is what every box-shaped accessor reports.
//
// Why
//
//	Higher layers (space.Space, space.MultiSpace) never store geometry
//	themselves: they hold Limits keyed by dimension subsets and delegate
//	membership, area and comparison here. Keeping the leaf self-contained
//	makes the per-dimension decomposition cheap: a multi-dimensional box
//	splits eagerly into single-dimension sublimits, so any subset of its
//	dimensions can be carved out without touching the rest.
//
// Bounds
//
//	Edges are bound.Value entries, so a box may mix plain numbers, deferred
//	scalars and the open-edge sentinels (bound.Any, bound.AnyLower,
//	bound.AnyUpper). Membership tests materialize edges eagerly: an
//	unresolved deferred edge fails with tensor.ErrDeferredValue rather than
//	guessing. Comparisons follow the two-mode contract: pass
//	allowDeferred=false to demand a concrete verdict now
//	(ErrDeferredComparison if impossible), or allowDeferred=true to receive
//	an unresolved tensor.Bool that re-attempts on Concrete().
//
// Predicate identity
//
//	Predicate limits compare by identity, never semantically: a limit and
//	every limit derived from it share one *Predicate and compare equal; two
//	independently constructed predicates never do, even if their functions
//	behave identically.
//
// Errors
//
//	ErrBadDim               - non-positive or out-of-range dimension
//	ErrShapeMismatch        - lower/upper/declared-dim disagreement
//	ErrPredicateNeedsBounds - predicate without a rectangular hull
//	ErrNoLimits             - box accessor on an Unset/Absent limit
//	ErrInvalidSubspace      - carving dimensions out of a predicate limit
//	ErrDeferredComparison   - concrete verdict demanded, operands deferred
//
// See also: package space for the keyed composition layer on top.
package limit
