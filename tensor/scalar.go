package tensor

// Resolver produces the concrete value of a deferred quantity.
// The boolean reports whether the surrounding evaluation context can supply
// the value yet; (0, false) means "not decidable now", not an error.
// Resolvers must be pure and idempotent: they may be invoked any number of
// times, including never.
type Resolver func() (float64, bool)

// Scalar is a float64 that is either concrete or deferred behind a Resolver.
// The zero value is the concrete 0.
type Scalar struct {
	val float64
	fn  Resolver
}

// Concrete wraps a plain float64 into an (always resolved) Scalar.
func Concrete(v float64) Scalar { return Scalar{val: v} }

// Deferred wraps a Resolver into a Scalar that materializes on demand.
// Panics with panicNilResolver if fn is nil.
func Deferred(fn Resolver) Scalar {
	if fn == nil {
		panic(panicNilResolver)
	}

	return Scalar{fn: fn}
}

// IsDeferred reports whether s was constructed deferred, regardless of
// whether it currently resolves.
func (s Scalar) IsDeferred() bool { return s.fn != nil }

// Resolved reports whether Concrete would succeed right now.
//
// Complexity: O(1) plus one resolver probe.
func (s Scalar) Resolved() bool {
	if s.fn == nil {
		return true
	}
	_, ok := s.fn()

	return ok
}

// Concrete materializes the scalar. It fails with ErrDeferredValue when the
// evaluation context cannot supply the value yet.
func (s Scalar) Concrete() (float64, error) {
	if s.fn == nil {
		return s.val, nil
	}
	if v, ok := s.fn(); ok {
		return v, nil
	}

	return 0, ErrDeferredValue
}
