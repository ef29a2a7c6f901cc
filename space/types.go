package space

import (
	"errors"

	"github.com/katalvlaran/obspace/limit"
)

// Sentinel errors returned by this package. Wrapped callers match them with
// errors.Is.
var (
	// ErrOverdefined reports conflicting construction input: two limit
	// specification styles, coordinates given twice, or entry keys claiming
	// a dimension more than once.
	ErrOverdefined = errors.New("space: conflicting specification")

	// ErrLimitsUnderdefined reports keyed limit entries that leave at least
	// one dimension uncovered.
	ErrLimitsUnderdefined = errors.New("space: limits do not cover every dimension")

	// ErrLimitsIncompatible reports limits that cannot coexist: disagreeing
	// values on a shared dimension or disagreeing limit states.
	ErrLimitsIncompatible = errors.New("space: incompatible limits")

	// ErrIncompatible reports spaces that cannot be brought onto a common
	// coordinate scheme.
	ErrIncompatible = errors.New("space: incompatible spaces")

	// ErrNoRectLimits reports a box accessor on a space that is not purely
	// rectangular or has no limits recorded.
	ErrNoRectLimits = errors.New("space: no rectangular limits available")

	// ErrNotImplemented reports a single-region property demanded of a
	// multi-region union.
	ErrNotImplemented = errors.New("space: not implemented for multiple alternatives")
)

// ErrDeferredComparison aliases the leaf sentinel so callers matching at
// this level need not import package limit.
var ErrDeferredComparison = limit.ErrDeferredComparison

// Panic messages for programmer errors rather than data errors.
const (
	// panicNilLimit guards keyed construction against nil limits.
	panicNilLimit = "space: nil limit"
	// panicNilRegion guards the combinators against nil regions.
	panicNilRegion = "space: nil region"
)

// entry binds one dimension subset to its limit. The subset is addressed
// under whichever schemes the owning Space carries: obs is non-nil exactly
// when the space has obs, axes exactly when it has axes. Entries are
// normalized at construction: rectangular geometry is held as
// single-dimension entries, predicates as one joint entry.
type entry struct {
	obs  []string
	axes []int
	lim  *limit.Limit
}

// keyLen reports the number of dimensions the entry covers.
func (e entry) keyLen() int {
	if e.obs != nil {
		return len(e.obs)
	}

	return len(e.axes)
}
