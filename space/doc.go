// Package space composes coordinates and limits into full domain
// descriptions: Space for one region, MultiSpace for a union of
// alternatives, and the combinators that build bigger domains from smaller
// ones.
//
// What
//
//	A Space is a coords.Coordinates plus keyed limit entries: each entry
//	binds a subset of the dimensions to the limit.Limit governing exactly
//	that subset. Construction normalizes the geometry - a bare box splits
//	into per-dimension entries, a predicate stays one joint entry - so two
//	spaces describing the same region decompose the same way. The
//	three-valued limit state (Unset | Absent | Defined) lives on the Space
//	and survives every transformation untouched.
//
//	A MultiSpace is an ordered union of Space alternatives sharing one
//	dimension shape: a point is inside when any alternative contains it.
//	Construction flattens nested unions, aligns every alternative to the
//	first one's coordinate scheme, drops an addressing scheme that cannot be
//	aligned while the other agrees, rejects alternatives that disagree on
//	the limit state, removes duplicates that compare concretely equal, and
//	collapses to the sole remaining *Space.
//
// Region
//
//	Both variants satisfy Region, the closed interface over domain
//	representations (an unexported method keeps it closed). Code operating
//	on domains - integration, sampling, model bookkeeping - accepts a Region
//	and never switches on the concrete type.
//
// Combinators
//
//	AddSpaces unions regions into a MultiSpace. CombineSpaces builds the
//	cross-product over disjoint dimension sets, requiring every input that
//	declares a shared dimension to agree on its limit. Equal and LessEqual
//	compare regions with the deferred two-mode contract: a concrete verdict
//	when decidable, otherwise an error or an unresolved tensor.Bool,
//	selected by the allowDeferred flag. Never a guess.
//
// Quick start
//
//	xy, err := space.New(
//	        space.WithObs("x", "y"),
//	        space.WithRect([]float64{0, -1}, []float64{10, 1}),
//	)
//	if err != nil { ... }
//	mask, err := xy.Inside([][]float64{{4, 0}, {11, 0}}, false) // true, false
//
// Errors
//
//	ErrOverdefined        - conflicting construction options or entry keys
//	ErrLimitsUnderdefined - keyed entries leave dimensions uncovered
//	ErrLimitsIncompatible - disagreement on shared dimensions or states
//	ErrIncompatible       - alternatives that cannot share a scheme
//	ErrNoRectLimits       - box accessor on a non-rectangular or empty space
//	ErrNotImplemented     - single-region property of a true multi-region
//	ErrDeferredComparison - concrete verdict demanded, operands deferred
//
// Coordinate errors surface from package coords, leaf errors from package
// limit, shape errors from package tensor; all match with errors.Is.
package space
