package limit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/tensor"
)

// Limit is one region over a fixed number of dimensions: an axis-aligned box,
// or a row-wise predicate paired with its enclosing box. Limits are immutable
// after construction; the composition layer shares them freely by pointer.
type Limit struct {
	dim   int
	state State
	lower []bound.Value // len == dim when Defined
	upper []bound.Value // len == dim when Defined
	pred  *Predicate    // nil for rectangular limits
	subs  []*Limit      // eager per-dimension split; nil means "only myself"
}

// NewUnset records "no decision about limits yet" over dim dimensions.
func NewUnset(dim int) (*Limit, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dim %d", ErrBadDim, dim)
	}

	return &Limit{dim: dim, state: Unset}, nil
}

// NewAbsent records "explicitly no limits" over dim dimensions.
func NewAbsent(dim int) (*Limit, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dim %d", ErrBadDim, dim)
	}

	return &Limit{dim: dim, state: Absent}, nil
}

// NewRect builds a rectangular limit from per-dimension lower/upper bounds.
// Both vectors must be non-empty and of equal length; a WithDim declaration
// must agree with them. A box spanning more than one dimension is eagerly
// decomposed into single-dimension sublimits.
//
// Complexity: O(dim).
func NewRect(lower, upper []bound.Value, opts ...Option) (*Limit, error) {
	cfg := buildConfig(opts)
	n := len(lower)
	if n == 0 && len(upper) == 0 {
		return nil, fmt.Errorf("%w: empty bound vectors", ErrBadDim)
	}
	if len(upper) != n {
		return nil, fmt.Errorf("%w: %d lower vs %d upper bounds", ErrShapeMismatch, n, len(upper))
	}
	if cfg.dim != 0 && cfg.dim != n {
		return nil, fmt.Errorf("%w: %d bounds for declared dim %d", ErrShapeMismatch, n, cfg.dim)
	}

	l := &Limit{
		dim:   n,
		state: Defined,
		lower: cloneBounds(lower),
		upper: cloneBounds(upper),
	}
	if n > 1 {
		l.subs = make([]*Limit, n)
		for i := 0; i < n; i++ {
			l.subs[i] = &Limit{
				dim:   1,
				state: Defined,
				lower: []bound.Value{lower[i]},
				upper: []bound.Value{upper[i]},
			}
		}
	}

	return l, nil
}

// NewPredicate builds a predicate limit: fn decides membership row-wise, and
// lower/upper give the mandatory rectangular hull enclosing the region.
// Panics on a nil fn; fails with ErrPredicateNeedsBounds when the hull is
// missing. Predicate limits never decompose: their sole sublimit is
// themselves.
func NewPredicate(fn PredicateFunc, lower, upper []bound.Value, opts ...Option) (*Limit, error) {
	if fn == nil {
		panic(panicNilPredicate)
	}
	cfg := buildConfig(opts)
	n := len(lower)
	if n == 0 && len(upper) == 0 {
		return nil, fmt.Errorf("%w: predicate over %d dimensions has no hull", ErrPredicateNeedsBounds, cfg.dim)
	}
	if len(upper) != n {
		return nil, fmt.Errorf("%w: %d lower vs %d upper bounds", ErrShapeMismatch, n, len(upper))
	}
	if cfg.dim != 0 && cfg.dim != n {
		return nil, fmt.Errorf("%w: %d bounds for declared dim %d", ErrShapeMismatch, n, cfg.dim)
	}

	return &Limit{
		dim:   n,
		state: Defined,
		lower: cloneBounds(lower),
		upper: cloneBounds(upper),
		pred:  NewPred(fn),
	}, nil
}

// Dim reports the number of dimensions the limit spans.
func (l *Limit) Dim() int { return l.dim }

// State reports the three-valued definedness.
func (l *Limit) State() State { return l.state }

// HasLimits reports whether an actual region is recorded.
func (l *Limit) HasLimits() bool { return l.state == Defined }

// Rectangular reports whether the shape carries no predicate. Unset and
// Absent limits are vacuously rectangular.
func (l *Limit) Rectangular() bool { return l.pred == nil }

// HasRectLimits reports whether the recorded region is exactly its box:
// defined and without a predicate.
func (l *Limit) HasRectLimits() bool { return l.state == Defined && l.pred == nil }

// Predicate returns the identity-carrying predicate, or nil for a
// rectangular limit.
func (l *Limit) Predicate() *Predicate { return l.pred }

// Sublimits returns the per-dimension decomposition: dim single-dimension
// limits for a multi-dimensional box, or the limit itself when it cannot be
// split (single dimension, predicate shape, Unset/Absent).
func (l *Limit) Sublimits() []*Limit {
	if l.subs == nil {
		return []*Limit{l}
	}
	out := make([]*Limit, len(l.subs))
	copy(out, l.subs)

	return out
}

// RectLimits returns copies of the lower and upper bound vectors. For a
// predicate limit this is the enclosing hull, not the region itself. Fails
// with ErrNoLimits on Unset/Absent limits.
func (l *Limit) RectLimits() (lower, upper []bound.Value, err error) {
	if l.state != Defined {
		return nil, nil, fmt.Errorf("%w: state %s", ErrNoLimits, l.state)
	}

	return cloneBounds(l.lower), cloneBounds(l.upper), nil
}

// RectLower returns a copy of the lower bound vector.
func (l *Limit) RectLower() ([]bound.Value, error) {
	lo, _, err := l.RectLimits()

	return lo, err
}

// RectUpper returns a copy of the upper bound vector.
func (l *Limit) RectUpper() ([]bound.Value, error) {
	_, up, err := l.RectLimits()

	return up, err
}

// ConcreteRect materializes the box as plain floats, mapping sentinels to
// ∓Inf. Fails with ErrNoLimits on Unset/Absent limits and with
// tensor.ErrDeferredValue when a deferred edge is still unresolved.
func (l *Limit) ConcreteRect() (lower, upper []float64, err error) {
	if l.state != Defined {
		return nil, nil, fmt.Errorf("%w: state %s", ErrNoLimits, l.state)
	}
	lo, err := bound.Materialize(l.lower, bound.Lower)
	if err != nil {
		return nil, nil, err
	}
	up, err := bound.Materialize(l.upper, bound.Upper)
	if err != nil {
		return nil, nil, err
	}

	return lo, up, nil
}

// RectArea returns the volume of the box: the product of per-dimension
// widths. A sentinel edge makes the area +Inf.
//
// Complexity: O(dim).
func (l *Limit) RectArea() (float64, error) {
	lo, up, err := l.ConcreteRect()
	if err != nil {
		return 0, err
	}
	widths := make([]float64, l.dim)
	floats.SubTo(widths, up, lo)

	return floats.Prod(widths), nil
}

// Inside reports row-wise membership of x (rows = events, columns =
// dimensions). Boxes test the closed interval lower ≤ x ≤ upper on every
// dimension; predicates are evaluated on the raw rows. When guaranteeLimits
// is true and the limit is purely rectangular, the check short-circuits to
// all-true; a predicate is still consulted, since the guarantee only covers
// its hull.
//
// Complexity: O(rows × dim).
func (l *Limit) Inside(x [][]float64, guaranteeLimits bool) ([]bool, error) {
	if l.state != Defined {
		return nil, fmt.Errorf("%w: state %s", ErrNoLimits, l.state)
	}
	if err := tensor.CheckPoints(x, l.dim); err != nil {
		return nil, err
	}
	if guaranteeLimits && l.pred == nil {
		return allTrue(len(x)), nil
	}
	if l.pred != nil {
		return l.pred.Call(x)
	}
	lo, up, err := l.ConcreteRect()
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(x))
	for i, row := range x {
		in := true
		for d := 0; d < l.dim && in; d++ {
			in = lo[d] <= row[d] && row[d] <= up[d]
		}
		out[i] = in
	}

	return out, nil
}

// Filter keeps only the rows of x that lie inside the limit. On the
// rectangular guarantee short-circuit the input batch is returned as-is;
// otherwise the result is a fresh batch.
func (l *Limit) Filter(x [][]float64, guaranteeLimits bool) ([][]float64, error) {
	if l.state != Defined {
		return nil, fmt.Errorf("%w: state %s", ErrNoLimits, l.state)
	}
	if err := tensor.CheckPoints(x, l.dim); err != nil {
		return nil, err
	}
	if guaranteeLimits && l.pred == nil {
		return x, nil
	}
	mask, err := l.Inside(x, guaranteeLimits)
	if err != nil {
		return nil, err
	}

	return tensor.MaskRows(x, mask)
}

// Subspace carves the dimensions selected by dims (0-based positions, kept
// in request order) out of a rectangular limit. Non-rectangular limits fail
// with ErrInvalidSubspace; invalid or repeated positions fail with ErrBadDim.
//
// Complexity: O(len(dims)).
func (l *Limit) Subspace(dims []int) (*Limit, error) {
	if l.state != Defined {
		return nil, fmt.Errorf("%w: state %s", ErrNoLimits, l.state)
	}
	if l.pred != nil {
		return nil, fmt.Errorf("%w: predicate limit over %d dimensions", ErrInvalidSubspace, l.dim)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: empty dimension selection", ErrBadDim)
	}

	seen := make(map[int]bool, len(dims))
	lo := make([]bound.Value, len(dims))
	up := make([]bound.Value, len(dims))
	for i, d := range dims {
		if d < 0 || d >= l.dim {
			return nil, fmt.Errorf("%w: index %d outside %d dimensions", ErrBadDim, d, l.dim)
		}
		if seen[d] {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrBadDim, d)
		}
		seen[d] = true
		lo[i] = l.lower[d]
		up[i] = l.upper[d]
	}

	return NewRect(lo, up)
}

// String renders the limit for diagnostics.
func (l *Limit) String() string {
	switch l.state {
	case Unset:
		return fmt.Sprintf("limit{dim=%d unset}", l.dim)
	case Absent:
		return fmt.Sprintf("limit{dim=%d absent}", l.dim)
	}
	shape := "rect"
	if l.pred != nil {
		shape = "predicate"
	}

	return fmt.Sprintf("limit{dim=%d %s %v..%v}", l.dim, shape, l.lower, l.upper)
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

func cloneBounds(vs []bound.Value) []bound.Value {
	out := make([]bound.Value, len(vs))
	copy(out, vs)

	return out
}

func allTrue(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}

	return out
}
