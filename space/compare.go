package space

import (
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
	"github.com/katalvlaran/obspace/tensor"
)

// limitCmp is the per-entry comparator shape shared by Equal and LessEqual.
type limitCmp = func(a, b *limit.Limit, allowDeferred bool) (tensor.Bool, error)

// Equal reports whether two regions describe the same domain: same
// dimension sets under every shared addressing scheme, same limit state,
// and pairwise equal limits between their alternatives (order of
// alternatives does not matter). With allowDeferred false the verdict is
// always concrete, failing with ErrDeferredComparison when a deferred
// bound blocks it; with allowDeferred true an undecidable verdict is
// returned unresolved and re-attempts on Concrete.
func Equal(a, b Region, allowDeferred bool) (tensor.Bool, error) {
	return compareRegions(a, b, allowDeferred, limit.Equal)
}

// LessEqual reports whether a's limits are edge-wise less-or-equal to b's,
// under the same structural prechecks and deferred-bound contract as Equal.
func LessEqual(a, b Region, allowDeferred bool) (tensor.Bool, error) {
	return compareRegions(a, b, allowDeferred, limit.LessEqual)
}

func compareRegions(a, b Region, allowDeferred bool, cmp limitCmp) (tensor.Bool, error) {
	if a == nil || b == nil {
		panic(panicNilRegion)
	}
	if a == b {
		return tensor.ResolvedBool(true), nil
	}

	// Structural prechecks give concrete verdicts regardless of deferral.
	bothObs := a.HasObs() && b.HasObs()
	bothAxes := a.HasAxes() && b.HasAxes()
	if !bothObs && !bothAxes {
		return tensor.ResolvedBool(false), nil
	}
	if bothObs && !setEqual(a.Obs(), b.Obs()) {
		return tensor.ResolvedBool(false), nil
	}
	if bothAxes && !setEqual(a.Axes(), b.Axes()) {
		return tensor.ResolvedBool(false), nil
	}
	if a.State() != b.State() {
		return tensor.ResolvedBool(false), nil
	}
	if a.State() != limit.Defined {
		return tensor.ResolvedBool(true), nil
	}

	// Align b onto a's coordinate order so entry keys line up.
	br, err := b.WithCoords(a.Coords(), coords.MatchExact)
	if err != nil {
		return tensor.Bool{}, err
	}
	altsA, altsB := a.Alternatives(), br.Alternatives()
	if len(altsA) != len(altsB) {
		return tensor.ResolvedBool(false), nil
	}

	res, decided := matchAlternatives(altsA, altsB, cmp)
	if decided {
		return tensor.ResolvedBool(res), nil
	}
	if !allowDeferred {
		return tensor.Bool{}, ErrDeferredComparison
	}

	return tensor.DeferredBool(func() (bool, bool) {
		return matchAlternatives(altsA, altsB, cmp)
	}), nil
}

// matchAlternatives pairs each alternative of a with a distinct one of b,
// greedily in order. The second result reports decidability: an
// alternative that conclusively matches nothing decides the whole verdict
// false, while one blocked only by deferred bounds leaves it undecided.
func matchAlternatives(altsA, altsB []*Space, cmp limitCmp) (bool, bool) {
	used := make([]bool, len(altsB))
	undecided := false
	for _, sa := range altsA {
		matched := false
		blocked := false
		for j, sb := range altsB {
			if used[j] {
				continue
			}
			verdict, err := matchEntries(sa, sb, cmp)
			if err != nil || !verdict.Resolved() {
				blocked = true
				continue
			}
			if ok, _ := verdict.Concrete(); ok {
				used[j] = true
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if blocked {
			undecided = true
			continue
		}

		return false, true
	}
	if undecided {
		return false, false
	}

	return true, true
}

// matchEntries compares two aligned alternatives entry by entry: the key
// sets must correspond exactly, and each limit pair goes through cmp. Keys
// match on the addressing scheme both sides share, preferring names.
func matchEntries(sa, sb *Space, cmp limitCmp) (tensor.Bool, error) {
	if len(sa.entries) != len(sb.entries) {
		return tensor.ResolvedBool(false), nil
	}
	byObs := sa.HasObs() && sb.HasObs()
	parts := make([]tensor.Bool, 0, len(sa.entries))
	for _, ea := range sa.entries {
		found := false
		for _, eb := range sb.entries {
			var same bool
			if byObs {
				same = equalSlices(ea.obs, eb.obs)
			} else {
				same = equalSlices(ea.axes, eb.axes)
			}
			if !same {
				continue
			}
			verdict, err := cmp(ea.lim, eb.lim, true)
			if err != nil {
				return tensor.Bool{}, err
			}
			parts = append(parts, verdict)
			found = true
			break
		}
		if !found {
			return tensor.ResolvedBool(false), nil
		}
	}

	return tensor.All(parts...), nil
}
