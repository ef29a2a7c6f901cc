package space

import (
	"fmt"

	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
)

// AddSpaces unions regions: the result contains a point when any input
// does. It is NewMulti under a combinator name; see there for the
// alignment and collapse rules.
func AddSpaces(regions ...Region) (Region, error) {
	return NewMulti(regions...)
}

// CombineSpaces builds the cross-product of spaces: the result spans the
// union of the inputs' dimensions, each dimension bounded the way its
// inputs bound it. Dimensions are united by name as soon as any input
// carries names (all inputs must then be named), by position otherwise, in
// first-appearance order. Inputs sharing a dimension must bound it
// identically; limit states must agree across all inputs. Union
// alternatives cannot be crossed.
func CombineSpaces(regions ...Region) (Region, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no spaces to combine", ErrIncompatible)
	}
	spaces := make([]*Space, len(regions))
	anyObs := false
	for i, r := range regions {
		if r == nil {
			panic(panicNilRegion)
		}
		s, ok := r.(*Space)
		if !ok {
			return nil, fmt.Errorf("%w: cross-product over union alternatives", ErrNotImplemented)
		}
		spaces[i] = s
		anyObs = anyObs || s.HasObs()
	}
	if len(spaces) == 1 {
		return spaces[0], nil
	}
	if anyObs {
		return combineByObs(spaces)
	}

	return combineByAxes(spaces)
}

func combineByObs(spaces []*Space) (Region, error) {
	var union []string
	for _, s := range spaces {
		if !s.HasObs() {
			return nil, fmt.Errorf("%w: cannot unite by name, %s carries no obs", coords.ErrUnderdefined, s)
		}
		for _, o := range s.Obs() {
			if indexOf(union, o) < 0 {
				union = append(union, o)
			}
		}
	}

	state, err := combinedState(spaces)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithObs(union...)}
	if state == limit.Absent {
		opts = append(opts, WithoutLimits())
	}
	if state != limit.Defined {
		return New(opts...)
	}

	var chosen []entry
	for _, s := range spaces {
		for _, e := range s.entries {
			matched, merr := mergeEntry(chosen, e, entryObsKey)
			if merr != nil {
				return nil, merr
			}
			if !matched {
				chosen = append(chosen, e)
			}
		}
	}
	for _, e := range chosen {
		opts = append(opts, WithSubLimit(e.obs, e.lim))
	}

	return New(opts...)
}

func combineByAxes(spaces []*Space) (Region, error) {
	var union []int
	for _, s := range spaces {
		for _, a := range s.Axes() {
			if indexOf(union, a) < 0 {
				union = append(union, a)
			}
		}
	}

	state, err := combinedState(spaces)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithAxes(union...)}
	if state == limit.Absent {
		opts = append(opts, WithoutLimits())
	}
	if state != limit.Defined {
		return New(opts...)
	}

	var chosen []entry
	for _, s := range spaces {
		for _, e := range s.entries {
			matched, merr := mergeEntry(chosen, e, entryAxesKey)
			if merr != nil {
				return nil, merr
			}
			if !matched {
				chosen = append(chosen, e)
			}
		}
	}
	for _, e := range chosen {
		opts = append(opts, WithSubLimitAxes(e.axes, e.lim))
	}

	return New(opts...)
}

// combinedState requires one limit state across all inputs: defining some
// dimensions while leaving others open has no consistent cross-product.
func combinedState(spaces []*Space) (limit.State, error) {
	state := spaces[0].State()
	for _, s := range spaces[1:] {
		if s.State() != state {
			return 0, fmt.Errorf("%w: mixed limit states %s and %s", ErrLimitsIncompatible, state, s.State())
		}
	}

	return state, nil
}

// mergeEntry reports whether e restates an already chosen entry over the
// same dimensions. Overlapping but non-identical dimension groups cannot be
// reconciled, and neither can disagreeing limits; both are incompatible.
// Comparison is concrete: a deferred bound fails the combine.
func mergeEntry[T comparable](chosen []entry, e entry, key func(entry) []T) (bool, error) {
	ek := key(e)
	for _, c := range chosen {
		ck := key(c)
		if !overlaps(ck, ek) {
			continue
		}
		if !setEqual(ck, ek) {
			return false, fmt.Errorf("%w: dimension groups %v and %v overlap", ErrLimitsIncompatible, ck, ek)
		}
		same, err := limit.Equal(c.lim, e.lim, false)
		if err != nil {
			return false, err
		}
		if ok, _ := same.Concrete(); !ok {
			return false, fmt.Errorf("%w: dimensions %v bounded differently", ErrLimitsIncompatible, ek)
		}

		return true, nil
	}

	return false, nil
}

func entryObsKey(e entry) []string { return e.obs }

func entryAxesKey(e entry) []int { return e.axes }

func overlaps[T comparable](a, b []T) bool {
	for _, v := range a {
		if indexOf(b, v) >= 0 {
			return true
		}
	}

	return false
}
