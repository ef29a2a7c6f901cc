package coords

import (
	"fmt"

	"github.com/katalvlaran/obspace/tensor"
)

// ReorderIndicesByObs yields, for each element of the requested obs order,
// its index in the current order, a true permutation: the requested set
// must equal the current set.
//
// Complexity: O(n).
func (c *Coordinates) ReorderIndicesByObs(obs []string) ([]int, error) {
	if c.obs == nil {
		return nil, fmt.Errorf("%w: coordinates carry no obs", ErrUnderdefined)
	}

	return permutationIndices(c.obs, obs, "obs")
}

// ReorderIndicesByAxes is ReorderIndicesByObs for the positional scheme.
func (c *Coordinates) ReorderIndicesByAxes(axes []int) ([]int, error) {
	if c.axes == nil {
		return nil, fmt.Errorf("%w: coordinates carry no axes", ErrUnderdefined)
	}

	return permutationIndices(c.axes, axes, "axes")
}

// ReorderPoints applies a coordinate permutation along the last axis of a
// point batch. With the X side set, x follows that ordering and is brought
// into the Coordinates' own order; with the Target side set, x follows the
// Coordinates' order and is brought into the target's. Exactly one side
// must be set.
//
// Complexity: O(rows × n).
func (c *Coordinates) ReorderPoints(x [][]float64, r Reorder) ([][]float64, error) {
	xSide := r.XObs != nil || r.XAxes != nil
	targetSide := r.TargetObs != nil || r.TargetAxes != nil
	if xSide && targetSide {
		return nil, fmt.Errorf("%w: both X and Target orderings given", ErrOverdefined)
	}
	if !xSide && !targetSide {
		return nil, fmt.Errorf("%w: no ordering given to reorder against", ErrUnderdefined)
	}
	if err := tensor.CheckPoints(x, c.Dim()); err != nil {
		return nil, err
	}

	var idx []int
	var err error
	obsGiven := r.XObs != nil || r.TargetObs != nil
	axesGiven := r.XAxes != nil || r.TargetAxes != nil
	switch {
	case obsGiven && c.obs != nil:
		if xSide {
			idx, err = permutationIndices(r.XObs, c.obs, "obs")
		} else {
			idx, err = permutationIndices(c.obs, r.TargetObs, "obs")
		}
	case axesGiven && c.axes != nil:
		if xSide {
			idx, err = permutationIndices(r.XAxes, c.axes, "axes")
		} else {
			idx, err = permutationIndices(c.axes, r.TargetAxes, "axes")
		}
	default:
		return nil, fmt.Errorf("%w: request and coordinates share no addressing scheme", ErrIncompatible)
	}
	if err != nil {
		return nil, err
	}

	return tensor.GatherCols(x, idx)
}

// permutationIndices yields, for each element of new, its index in old.
// The two must be permutations of each other.
func permutationIndices[T comparable](old, new []T, scheme string) ([]int, error) {
	if len(old) != len(new) {
		return nil, fmt.Errorf("%w: requested %d %s, have %d", ErrIncompatible, len(new), scheme, len(old))
	}
	pos := make(map[T]int, len(old))
	for i, v := range old {
		pos[v] = i
	}
	idx := make([]int, len(new))
	for i, v := range new {
		j, ok := pos[v]
		if !ok {
			return nil, fmt.Errorf("%w: %s %v not present", ErrIncompatible, scheme, v)
		}
		idx[i] = j
	}

	return idx, nil
}

// deviationIndices computes gather indices for WithObs/WithAxes under the
// Match rules: equal sets permute; a strict superset request (extras
// ignored) needs MatchSuperset; a strict subset request (result shrinks)
// needs MatchSubset; anything else is incompatible.
func deviationIndices[T comparable](current, requested []T, m Match, scheme string) ([]int, error) {
	curSet := make(map[T]struct{}, len(current))
	for _, v := range current {
		curSet[v] = struct{}{}
	}
	reqSet := make(map[T]struct{}, len(requested))
	for _, v := range requested {
		reqSet[v] = struct{}{}
	}
	missing := 0 // current dims absent from the request
	for _, v := range current {
		if _, ok := reqSet[v]; !ok {
			missing++
		}
	}
	extra := 0 // requested dims unknown to current
	for _, v := range requested {
		if _, ok := curSet[v]; !ok {
			extra++
		}
	}

	switch {
	case missing == 0 && extra == 0:
		// Exact permutation.
	case missing == 0 && extra > 0:
		if !m.superset() {
			return nil, fmt.Errorf("%w: requested %s are a superset of the current ones, not allowed by Match", ErrIncompatible, scheme)
		}
	case missing > 0 && extra == 0:
		if !m.subset() {
			return nil, fmt.Errorf("%w: requested %s are a subset of the current ones, not allowed by Match", ErrIncompatible, scheme)
		}
	default:
		return nil, fmt.Errorf("%w: requested %s neither match, contain nor are contained in the current ones", ErrIncompatible, scheme)
	}

	pos := make(map[T]int, len(current))
	for i, v := range current {
		pos[v] = i
	}
	idx := make([]int, 0, len(requested))
	for _, v := range requested {
		if j, ok := pos[v]; ok {
			idx = append(idx, j)
		}
	}

	return idx, nil
}

// sameSet reports set equality of two equal-length identifier slices.
func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[T]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}

	return true
}
