package space

import (
	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
)

// Option customizes space construction. Options are gathered first and
// validated together in a single finalize step; using more than one limit
// specification style fails with ErrOverdefined.
type Option func(*builder)

type builder struct {
	// Coordinates: either obs/axes vectors or a pre-built Coordinates.
	obs    []string
	axes   []int
	coords *coords.Coordinates

	// Limits: at most one of the following groups may be used.
	rect    *rectSpec
	pred    *predSpec
	whole   *limit.Limit
	subs    []subSpec
	absent  bool
	carried []entry // Copy path: entries taken over from an existing space
}

type rectSpec struct {
	lower, upper []bound.Value
}

type predSpec struct {
	fn           limit.PredicateFunc
	lower, upper []bound.Value
}

type subSpec struct {
	obs  []string
	axes []int
	lim  *limit.Limit
}

// WithObs names the dimensions, in order.
func WithObs(obs ...string) Option {
	return func(b *builder) { b.obs = obs }
}

// WithAxes numbers the dimensions, in order.
func WithAxes(axes ...int) Option {
	return func(b *builder) { b.axes = axes }
}

// WithCoords supplies a pre-built coordinate system. Combining it with
// WithObs or WithAxes fails with ErrOverdefined.
func WithCoords(c *coords.Coordinates) Option {
	return func(b *builder) { b.coords = c }
}

// WithRect sets a rectangular box from plain per-dimension bounds.
func WithRect(lower, upper []float64) Option {
	return func(b *builder) {
		b.rect = &rectSpec{lower: bound.Floats(lower...), upper: bound.Floats(upper...)}
	}
}

// WithRectBounds sets a rectangular box from bound values, admitting
// sentinels and deferred edges.
func WithRectBounds(lower, upper []bound.Value) Option {
	return func(b *builder) { b.rect = &rectSpec{lower: lower, upper: upper} }
}

// WithPredicate sets a predicate region plus its mandatory rectangular hull.
func WithPredicate(fn limit.PredicateFunc, lower, upper []bound.Value) Option {
	return func(b *builder) { b.pred = &predSpec{fn: fn, lower: lower, upper: upper} }
}

// WithLimit reuses a pre-built limit covering every dimension. The limit's
// state carries over: an Unset or Absent limit yields a space in that state.
func WithLimit(l *limit.Limit) Option {
	return func(b *builder) { b.whole = l }
}

// WithSubLimit binds a limit to the dimension subset named by obs.
// Repeatable; the keys of all sub-limit options together must cover every
// dimension exactly once.
func WithSubLimit(obs []string, l *limit.Limit) Option {
	return func(b *builder) { b.subs = append(b.subs, subSpec{obs: obs, lim: l}) }
}

// WithSubLimitAxes binds a limit to the dimension subset selected by axes.
// Repeatable; mixing with obs-keyed sub-limits fails with ErrOverdefined.
func WithSubLimitAxes(axes []int, l *limit.Limit) Option {
	return func(b *builder) { b.subs = append(b.subs, subSpec{axes: axes, lim: l}) }
}

// WithoutLimits records the explicit "no limits" decision (Absent), as
// opposed to leaving the question open (Unset).
func WithoutLimits() Option {
	return func(b *builder) { b.absent = true }
}

// limitStyles counts the distinct limit specification groups in use.
func (b *builder) limitStyles() int {
	n := 0
	if b.rect != nil {
		n++
	}
	if b.pred != nil {
		n++
	}
	if b.whole != nil {
		n++
	}
	if len(b.subs) > 0 {
		n++
	}
	if b.absent {
		n++
	}
	if b.carried != nil {
		n++
	}

	return n
}
