package tensor

// BoolResolver produces the concrete outcome of a deferred comparison.
// The second boolean reports whether the outcome is decidable yet.
// Same purity contract as Resolver.
type BoolResolver func() (bool, bool)

// Bool is a three-state boolean: resolved true, resolved false, or
// unresolved until the quantities it compares materialize.
// The zero value is the resolved false.
type Bool struct {
	val bool
	fn  BoolResolver
}

// ResolvedBool wraps a plain bool into an (always resolved) Bool.
func ResolvedBool(v bool) Bool { return Bool{val: v} }

// DeferredBool wraps a BoolResolver into a Bool that decides on demand.
// Panics with panicNilResolver if fn is nil.
func DeferredBool(fn BoolResolver) Bool {
	if fn == nil {
		panic(panicNilResolver)
	}

	return Bool{fn: fn}
}

// IsDeferred reports whether b was constructed deferred.
func (b Bool) IsDeferred() bool { return b.fn != nil }

// Resolved reports whether Concrete would succeed right now.
func (b Bool) Resolved() bool {
	if b.fn == nil {
		return true
	}
	_, ok := b.fn()

	return ok
}

// Concrete materializes the outcome. It fails with ErrDeferredValue when the
// comparison is not decidable yet.
func (b Bool) Concrete() (bool, error) {
	if b.fn == nil {
		return b.val, nil
	}
	if v, ok := b.fn(); ok {
		return v, nil
	}

	return false, ErrDeferredValue
}

// concrete is the resolver-shaped view used by the combinators.
func (b Bool) concrete() (bool, bool) {
	if b.fn == nil {
		return b.val, true
	}

	return b.fn()
}

// And combines two outcomes conjunctively. A resolved false on either side
// decides the result immediately; otherwise the result defers until both
// sides resolve.
func And(a, b Bool) Bool {
	av, aval := a.fn == nil, a.val
	bv, bval := b.fn == nil, b.val
	// Resolved false dominates even an unresolved partner.
	if av && !aval {
		return ResolvedBool(false)
	}
	if bv && !bval {
		return ResolvedBool(false)
	}
	if av && bv {
		return ResolvedBool(aval && bval)
	}

	return DeferredBool(func() (bool, bool) {
		x, xok := a.concrete()
		y, yok := b.concrete()
		if xok && !x {
			return false, true
		}
		if yok && !y {
			return false, true
		}
		if !xok || !yok {
			return false, false
		}

		return x && y, true
	})
}

// Or combines two outcomes disjunctively. A resolved true on either side
// decides the result immediately; otherwise the result defers until both
// sides resolve.
func Or(a, b Bool) Bool {
	av, aval := a.fn == nil, a.val
	bv, bval := b.fn == nil, b.val
	if av && aval {
		return ResolvedBool(true)
	}
	if bv && bval {
		return ResolvedBool(true)
	}
	if av && bv {
		return ResolvedBool(aval || bval)
	}

	return DeferredBool(func() (bool, bool) {
		x, xok := a.concrete()
		y, yok := b.concrete()
		if xok && x {
			return true, true
		}
		if yok && y {
			return true, true
		}
		if !xok || !yok {
			return false, false
		}

		return x || y, true
	})
}

// Not negates an outcome; an unresolved input stays unresolved.
func Not(a Bool) Bool {
	if a.fn == nil {
		return ResolvedBool(!a.val)
	}

	return DeferredBool(func() (bool, bool) {
		v, ok := a.fn()

		return !v, ok
	})
}

// All folds And over bs; the empty conjunction is the resolved true.
//
// Complexity: O(len(bs)).
func All(bs ...Bool) Bool {
	out := ResolvedBool(true)
	for _, b := range bs {
		out = And(out, b)
	}

	return out
}

// Any folds Or over bs; the empty disjunction is the resolved false.
//
// Complexity: O(len(bs)).
func Any(bs ...Bool) Bool {
	out := ResolvedBool(false)
	for _, b := range bs {
		out = Or(out, b)
	}

	return out
}
