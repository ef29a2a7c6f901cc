package bound

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/obspace/tensor"
)

// Default tolerances for numeric bound equality. Single source of truth;
// every comparator in the algebra goes through them unless a caller picks
// its own via EqualWithin.
const (
	// DefaultRelTol is the default relative tolerance.
	DefaultRelTol = 1e-5
	// DefaultAbsTol is the default absolute tolerance.
	DefaultAbsTol = 1e-8
)

// LessEq reports v ≤ w under the sentinel total-order surrogate.
//
// Sentinel rules decide first, left operand before right, without touching
// any deferred partner: Any and AnyLower are ≤ everything; AnyUpper is ≤
// nothing (itself included). A purely numeric pair compares by value and
// defers when an operand is unresolved.
func LessEq(v, w Value) tensor.Bool {
	switch v.k {
	case KindAny, KindAnyLower:
		return tensor.ResolvedBool(true)
	case KindAnyUpper:
		return tensor.ResolvedBool(false)
	}
	switch w.k {
	case KindAny, KindAnyUpper:
		return tensor.ResolvedBool(true)
	case KindAnyLower:
		return tensor.ResolvedBool(false)
	}

	return numCompare(v, w, func(a, b float64) bool { return a <= b })
}

// Less reports v < w; sentinel rules as in LessEq.
func Less(v, w Value) tensor.Bool {
	switch v.k {
	case KindAny, KindAnyLower:
		return tensor.ResolvedBool(true)
	case KindAnyUpper:
		return tensor.ResolvedBool(false)
	}
	switch w.k {
	case KindAny, KindAnyUpper:
		return tensor.ResolvedBool(true)
	case KindAnyLower:
		return tensor.ResolvedBool(false)
	}

	return numCompare(v, w, func(a, b float64) bool { return a < b })
}

// GreaterEq reports v ≥ w: Any and AnyUpper are ≥ everything; AnyLower is ≥
// nothing.
func GreaterEq(v, w Value) tensor.Bool {
	switch v.k {
	case KindAny, KindAnyUpper:
		return tensor.ResolvedBool(true)
	case KindAnyLower:
		return tensor.ResolvedBool(false)
	}
	switch w.k {
	case KindAny, KindAnyLower:
		return tensor.ResolvedBool(true)
	case KindAnyUpper:
		return tensor.ResolvedBool(false)
	}

	return numCompare(v, w, func(a, b float64) bool { return a >= b })
}

// Greater reports v > w; sentinel rules as in GreaterEq.
func Greater(v, w Value) tensor.Bool {
	switch v.k {
	case KindAny, KindAnyUpper:
		return tensor.ResolvedBool(true)
	case KindAnyLower:
		return tensor.ResolvedBool(false)
	}
	switch w.k {
	case KindAny, KindAnyLower:
		return tensor.ResolvedBool(true)
	case KindAnyUpper:
		return tensor.ResolvedBool(false)
	}

	return numCompare(v, w, func(a, b float64) bool { return a > b })
}

// Equal reports equality under the default tolerances. A sentinel equals
// only the same sentinel; a sentinel never equals a number.
func Equal(v, w Value) tensor.Bool {
	return EqualWithin(v, w, DefaultAbsTol, DefaultRelTol)
}

// EqualWithin is Equal with caller-chosen tolerances.
func EqualWithin(v, w Value, absTol, relTol float64) tensor.Bool {
	if v.IsSentinel() || w.IsSentinel() {
		return tensor.ResolvedBool(v.k == w.k)
	}

	return numCompare(v, w, func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
	})
}

// numCompare compares two numeric-variant Values: resolved for concrete
// pairs, deferred until both operands materialize otherwise.
func numCompare(v, w Value, cmp func(a, b float64) bool) tensor.Bool {
	if v.k == KindConcrete && w.k == KindConcrete {
		return tensor.ResolvedBool(cmp(v.f, w.f))
	}

	return tensor.DeferredBool(func() (bool, bool) {
		a, aok := v.resolve()
		b, bok := w.resolve()
		if !aok || !bok {
			return false, false
		}

		return cmp(a, b), true
	})
}
