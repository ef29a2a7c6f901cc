package bound

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/obspace/tensor"
)

// Kind discriminates the variants a Value can hold.
type Kind uint8

const (
	// KindConcrete is a plain finite number.
	KindConcrete Kind = iota
	// KindDeferred is a number living inside a deferred computation.
	KindDeferred
	// KindAny is the "unbounded in either direction" sentinel.
	KindAny
	// KindAnyLower is the "unbounded below" sentinel.
	KindAnyLower
	// KindAnyUpper is the "unbounded above" sentinel.
	KindAnyUpper
)

// Side tells Float which direction a sentinel should resolve to when it is
// forced into ordinary float arithmetic.
type Side uint8

const (
	// Lower marks the lower edge of an interval.
	Lower Side = iota
	// Upper marks the upper edge of an interval.
	Upper
)

// ErrSentinel indicates an attempt to read a sentinel as a plain number
// without naming the side it bounds.
var ErrSentinel = errors.New("bound: sentinel bound has no numeric value")

// Value is one edge of a region along one dimension. The zero value is the
// concrete 0. Values are immutable; two concrete Values may be compared with
// ==, deferred Values compare by identity of their origin.
type Value struct {
	k Kind
	f float64
	s *tensor.Scalar
}

// The three sentinels. Read-only; initialized once.
var (
	// Any is unbounded in either direction.
	Any = Value{k: KindAny}
	// AnyLower is unbounded below.
	AnyLower = Value{k: KindAnyLower}
	// AnyUpper is unbounded above.
	AnyUpper = Value{k: KindAnyUpper}
)

// Of wraps a plain float64 into a concrete Value.
func Of(v float64) Value { return Value{k: KindConcrete, f: v} }

// FromScalar wraps a tensor.Scalar. A scalar that was never deferred
// collapses to a concrete Value.
func FromScalar(s tensor.Scalar) Value {
	if !s.IsDeferred() {
		v, _ := s.Concrete()

		return Of(v)
	}

	return Value{k: KindDeferred, s: &s}
}

// Floats wraps a vector of plain numbers into concrete Values.
func Floats(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Of(v)
	}

	return out
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.k
}

// IsSentinel reports whether v is one of Any, AnyLower, AnyUpper.
func (v Value) IsSentinel() bool {
	return v.k == KindAny || v.k == KindAnyLower || v.k == KindAnyUpper
}

// Resolved reports whether numeric reads of v would succeed right now.
// Sentinels are always resolved: they need no evaluation context.
func (v Value) Resolved() bool {
	if v.k == KindDeferred {
		return v.s.Resolved()
	}

	return true
}

// Concrete materializes v as a plain number. Sentinels fail with
// ErrSentinel; unresolved deferred values fail with tensor.ErrDeferredValue.
func (v Value) Concrete() (float64, error) {
	switch v.k {
	case KindConcrete:
		return v.f, nil
	case KindDeferred:
		return v.s.Concrete()
	default:
		return 0, ErrSentinel
	}
}

// Float materializes v for float arithmetic on the given interval side.
// Sentinels resolve to ∓Inf: AnyLower to -Inf, AnyUpper to +Inf, and Any to
// whichever infinity the side calls for.
func (v Value) Float(side Side) (float64, error) {
	switch v.k {
	case KindConcrete:
		return v.f, nil
	case KindDeferred:
		return v.s.Concrete()
	case KindAnyLower:
		return math.Inf(-1), nil
	case KindAnyUpper:
		return math.Inf(+1), nil
	default: // KindAny
		if side == Lower {
			return math.Inf(-1), nil
		}

		return math.Inf(+1), nil
	}
}

// resolve is the comparison-side numeric view: (value, decidable-now).
// Sentinels report not-decidable; comparison rules must consume them first.
func (v Value) resolve() (float64, bool) {
	switch v.k {
	case KindConcrete:
		return v.f, true
	case KindDeferred:
		f, err := v.s.Concrete()

		return f, err == nil
	default:
		return 0, false
	}
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.k {
	case KindConcrete:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDeferred:
		if f, err := v.s.Concrete(); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}

		return "deferred"
	case KindAny:
		return "any"
	case KindAnyLower:
		return "any_lower"
	default:
		return "any_upper"
	}
}

// Materialize converts a bound vector to plain floats for arithmetic on the
// given interval side, mapping sentinels to ∓Inf. It fails with
// tensor.ErrDeferredValue when any element is deferred and unresolved.
//
// Complexity: O(len(vs)).
func Materialize(vs []Value, side Side) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := v.Float(side)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}

	return out, nil
}
