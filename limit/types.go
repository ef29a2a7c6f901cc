package limit

import (
	"errors"
)

// Sentinel errors returned by this package. Wrapped callers can match them
// with errors.Is.
var (
	// ErrBadDim reports a non-positive dimension count or an out-of-range
	// dimension index.
	ErrBadDim = errors.New("limit: bad dimension")

	// ErrShapeMismatch reports disagreeing lower/upper lengths or a declared
	// dimension that contradicts the bound vectors.
	ErrShapeMismatch = errors.New("limit: shape mismatch")

	// ErrPredicateNeedsBounds reports a predicate limit constructed without
	// its mandatory rectangular hull.
	ErrPredicateNeedsBounds = errors.New("limit: predicate requires rectangular fallback bounds")

	// ErrNoLimits reports a box accessor invoked on an Unset or Absent limit.
	ErrNoLimits = errors.New("limit: no limits recorded")

	// ErrInvalidSubspace reports an attempt to carve dimensions out of a
	// non-rectangular limit.
	ErrInvalidSubspace = errors.New("limit: cannot take subspace of non-rectangular limit")

	// ErrDeferredComparison reports a comparison that demanded a concrete
	// verdict while at least one operand is still deferred.
	ErrDeferredComparison = errors.New("limit: comparison deferred; no concrete verdict available")
)

// panicNilPredicate guards NewPredicate against a nil membership function,
// which is a programmer error rather than a data error.
const panicNilPredicate = "limit: nil predicate function"

// State is the three-valued definedness of a Limit. The zero value is Unset.
type State uint8

const (
	// Unset means no decision about limits has been recorded.
	Unset State = iota
	// Absent means "explicitly no limits" was recorded.
	Absent
	// Defined means an actual region is recorded.
	Defined
)

// String implements fmt.Stringer for diagnostics.
func (s State) String() string {
	switch s {
	case Unset:
		return "Unset"
	case Absent:
		return "Absent"
	case Defined:
		return "Defined"
	default:
		return "State(?)"
	}
}

// PredicateFunc decides row-wise membership on a batch of points
// (rows = events, columns = dimensions). It must return one verdict per row.
type PredicateFunc func(x [][]float64) ([]bool, error)

// Predicate wraps a membership function behind a stable identity: limits
// sharing one *Predicate compare equal, independently built ones never do.
type Predicate struct {
	fn PredicateFunc
}

// NewPred wraps fn into an identity-carrying Predicate.
// Panics on a nil fn.
func NewPred(fn PredicateFunc) *Predicate {
	if fn == nil {
		panic(panicNilPredicate)
	}

	return &Predicate{fn: fn}
}

// Call evaluates the wrapped function on x.
func (p *Predicate) Call(x [][]float64) ([]bool, error) {
	return p.fn(x)
}

// Option customizes Limit construction.
type Option func(*config)

type config struct {
	dim int // 0 = infer from the bound vectors
}

// WithDim declares the dimension count up front; the constructors verify it
// against the bound vectors and fail with ErrShapeMismatch on disagreement.
func WithDim(n int) Option {
	return func(c *config) { c.dim = n }
}
