package limit

import (
	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/tensor"
)

// panicNilLimit guards the comparators against nil operands.
const panicNilLimit = "limit: nil limit operand"

// Equal reports whether a and b describe the same region: matching dimension
// count and state, boxes equal edge-wise under the default tolerances
// (sentinels by self-identity), predicates by identity.
//
// The verdict follows the two-mode contract. When it is decidable now, the
// returned tensor.Bool is resolved and err is nil. When a deferred edge
// blocks the decision: allowDeferred=false fails with ErrDeferredComparison;
// allowDeferred=true returns an unresolved tensor.Bool that re-attempts on
// Concrete(). The verdict is never guessed.
func Equal(a, b *Limit, allowDeferred bool) (tensor.Bool, error) {
	return compare(a, b, allowDeferred, bound.Equal)
}

// LessEqual reports the edge-wise order: every lower edge of a ≤ the matching
// lower edge of b, and every upper edge of a ≤ the matching upper edge of b,
// under the sentinel ordering rules. Predicates must be identical. Deferred
// handling as in Equal.
func LessEqual(a, b *Limit, allowDeferred bool) (tensor.Bool, error) {
	return compare(a, b, allowDeferred, bound.LessEq)
}

// Equal is the method form of the package-level Equal.
func (l *Limit) Equal(other *Limit, allowDeferred bool) (tensor.Bool, error) {
	return Equal(l, other, allowDeferred)
}

// LessEq is the method form of the package-level LessEqual.
func (l *Limit) LessEq(other *Limit, allowDeferred bool) (tensor.Bool, error) {
	return LessEqual(l, other, allowDeferred)
}

// compare runs the shared comparison skeleton with cmp applied edge-wise.
//
// Structural disagreements (dimension, state, predicate identity) decide
// concretely without touching any deferred edge; only the numeric edge
// comparisons can defer.
//
// Complexity: O(dim) plus deferred re-attempts.
func compare(a, b *Limit, allowDeferred bool, cmp func(v, w bound.Value) tensor.Bool) (tensor.Bool, error) {
	if a == nil || b == nil {
		panic(panicNilLimit)
	}
	if a == b {
		return tensor.ResolvedBool(true), nil
	}
	if a.dim != b.dim || a.state != b.state {
		return tensor.ResolvedBool(false), nil
	}
	if a.state != Defined {
		// Same dimension, same non-Defined state: nothing more to compare.
		return tensor.ResolvedBool(true), nil
	}
	if a.pred != b.pred {
		return tensor.ResolvedBool(false), nil
	}

	parts := make([]tensor.Bool, 0, 2*a.dim)
	for i := 0; i < a.dim; i++ {
		parts = append(parts, cmp(a.lower[i], b.lower[i]), cmp(a.upper[i], b.upper[i]))
	}
	res := tensor.All(parts...)
	if res.Resolved() {
		v, err := res.Concrete()
		if err != nil {
			return tensor.Bool{}, err
		}

		return tensor.ResolvedBool(v), nil
	}
	if !allowDeferred {
		return tensor.Bool{}, ErrDeferredComparison
	}

	return res, nil
}
