package space

import (
	"fmt"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
	"github.com/katalvlaran/obspace/tensor"
)

// MultiSpace is a union of alternative regions over one shared coordinate
// system: a point is inside when it is inside any alternative. Instances
// only come out of NewMulti (or the Add combinators) and always hold at
// least two distinct alternatives, all with defined limits; anything
// simpler collapses to a plain Space.
type MultiSpace struct {
	coords *coords.Coordinates
	alts   []*Space
}

// NewMulti unions regions into one. Inputs are flattened into their
// alternatives and aligned onto the first one's coordinate order: by name
// when every alternative is named and the name sets agree, else by
// position. A scheme only some alternatives carry, or that disagrees after
// the reorder, is dropped. All alternatives must share one limit state;
// a union of undefined alternatives collapses to the first one, duplicates
// collapse to a single member, and a single survivor is returned as itself.
func NewMulti(regions ...Region) (Region, error) {
	var alts []*Space
	for _, r := range regions {
		if r == nil {
			panic(panicNilRegion)
		}
		alts = append(alts, r.Alternatives()...)
	}
	if len(alts) == 0 {
		return nil, fmt.Errorf("%w: no spaces to union", ErrIncompatible)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}

	alts, err := alignAlternatives(alts)
	if err != nil {
		return nil, err
	}

	state := alts[0].State()
	for _, a := range alts[1:] {
		if a.State() != state {
			return nil, fmt.Errorf("%w: mixed limit states %s and %s", ErrLimitsIncompatible, state, a.State())
		}
	}
	if state != limit.Defined {
		return alts[0], nil
	}

	alts = dedupAlternatives(alts)
	if len(alts) == 1 {
		return alts[0], nil
	}

	return &MultiSpace{coords: alts[0].coords, alts: alts}, nil
}

// alignAlternatives reorders every alternative onto the first one's
// coordinate order and strips whichever addressing scheme cannot be made
// consistent across all of them.
func alignAlternatives(alts []*Space) ([]*Space, error) {
	first := alts[0]
	allObs, allAxes := true, true
	for _, a := range alts {
		allObs = allObs && a.HasObs()
		allAxes = allAxes && a.HasAxes()
	}
	obsAgree := allObs
	if allObs {
		fo := first.Obs()
		for _, a := range alts[1:] {
			obsAgree = obsAgree && setEqual(fo, a.Obs())
		}
	}
	axesAgree := allAxes
	if allAxes {
		fa := first.Axes()
		for _, a := range alts[1:] {
			axesAgree = axesAgree && setEqual(fa, a.Axes())
		}
	}

	out := make([]*Space, len(alts))
	switch {
	case obsAgree:
		fo := first.Obs()
		for i, a := range alts {
			na, err := a.withObs(fo, coords.MatchExact)
			if err != nil {
				return nil, err
			}
			out[i] = na
		}
		// Axes survive only when every alternative carries them and they
		// still agree after the reorder.
		keep := allAxes
		if keep {
			fa := out[0].Axes()
			for _, a := range out[1:] {
				keep = keep && equalSlices(fa, a.Axes())
			}
		}
		if !keep {
			if err := stripAxes(out); err != nil {
				return nil, err
			}
		}

	case axesAgree:
		fa := first.Axes()
		for i, a := range alts {
			na, err := a.withAxes(fa, coords.MatchExact)
			if err != nil {
				return nil, err
			}
			out[i] = na
		}
		keep := allObs
		if keep {
			fo := out[0].Obs()
			for _, a := range out[1:] {
				keep = keep && equalSlices(fo, a.Obs())
			}
		}
		if !keep {
			if err := stripObs(out); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("%w: alternatives do not share an addressing scheme", ErrIncompatible)
	}

	return out, nil
}

func stripAxes(alts []*Space) error {
	for i, a := range alts {
		if !a.HasAxes() {
			continue
		}
		na, err := a.dropAxes()
		if err != nil {
			return err
		}
		alts[i] = na
	}

	return nil
}

func stripObs(alts []*Space) error {
	for i, a := range alts {
		if !a.HasObs() {
			continue
		}
		na, err := a.dropObs()
		if err != nil {
			return err
		}
		alts[i] = na
	}

	return nil
}

// dedupAlternatives drops alternatives whose limits provably equal an
// already kept one. Undecidable comparisons keep both sides.
func dedupAlternatives(alts []*Space) []*Space {
	out := []*Space{alts[0]}
	for _, a := range alts[1:] {
		dup := false
		for _, kept := range out {
			verdict, err := Equal(kept, a, false)
			if err != nil {
				continue
			}
			if same, cerr := verdict.Concrete(); cerr == nil && same {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}

	return out
}

// Coords returns the shared coordinate system.
func (m *MultiSpace) Coords() *coords.Coordinates { return m.coords }

// Dim reports the number of dimensions.
func (m *MultiSpace) Dim() int { return m.coords.Dim() }

// HasObs reports whether the dimensions are named.
func (m *MultiSpace) HasObs() bool { return m.coords.HasObs() }

// HasAxes reports whether the dimensions are numbered.
func (m *MultiSpace) HasAxes() bool { return m.coords.HasAxes() }

// Obs returns a copy of the dimension names, or nil.
func (m *MultiSpace) Obs() []string { return m.coords.Obs() }

// Axes returns a copy of the dimension numbers, or nil.
func (m *MultiSpace) Axes() []int { return m.coords.Axes() }

// State reports the shared limit state of the alternatives.
func (m *MultiSpace) State() limit.State { return m.alts[0].State() }

// HasLimits reports whether actual regions are recorded.
func (m *MultiSpace) HasLimits() bool { return m.alts[0].HasLimits() }

// HasRectLimits reports whether every alternative is purely rectangular.
func (m *MultiSpace) HasRectLimits() bool {
	for _, a := range m.alts {
		if !a.HasRectLimits() {
			return false
		}
	}

	return true
}

// RectLimits fails: multiple alternatives have no single box.
func (m *MultiSpace) RectLimits() (lower, upper []bound.Value, err error) {
	return nil, nil, fmt.Errorf("%w: no single box over %d alternatives", ErrNotImplemented, len(m.alts))
}

// RectLower fails: multiple alternatives have no single box.
func (m *MultiSpace) RectLower() ([]bound.Value, error) {
	_, _, err := m.RectLimits()

	return nil, err
}

// RectUpper fails: multiple alternatives have no single box.
func (m *MultiSpace) RectUpper() ([]bound.Value, error) {
	_, _, err := m.RectLimits()

	return nil, err
}

// ConcreteRect fails: multiple alternatives have no single box.
func (m *MultiSpace) ConcreteRect() (lower, upper []float64, err error) {
	_, _, rerr := m.RectLimits()

	return nil, nil, rerr
}

// RectArea sums the alternatives' box volumes. Overlap is not subtracted.
func (m *MultiSpace) RectArea() (float64, error) {
	total := 0.0
	for _, a := range m.alts {
		area, err := a.RectArea()
		if err != nil {
			return 0, err
		}
		total += area
	}

	return total, nil
}

// Inside reports row-wise membership: true where any alternative contains
// the row. guaranteeLimits short-circuits a purely rectangular union to
// all-true.
//
// Complexity: O(alternatives × rows × dim) for rectangular unions.
func (m *MultiSpace) Inside(x [][]float64, guaranteeLimits bool) ([]bool, error) {
	if err := tensor.CheckPoints(x, m.Dim()); err != nil {
		return nil, err
	}
	if guaranteeLimits && m.HasRectLimits() {
		return allTrue(len(x)), nil
	}

	var mask []bool
	for _, a := range m.alts {
		in, err := a.Inside(x, guaranteeLimits)
		if err != nil {
			return nil, err
		}
		if mask == nil {
			mask = in
			continue
		}
		if mask, err = tensor.OrMask(mask, in); err != nil {
			return nil, err
		}
	}

	return mask, nil
}

// Filter keeps only the rows of x inside any alternative.
func (m *MultiSpace) Filter(x [][]float64, guaranteeLimits bool) ([][]float64, error) {
	if err := tensor.CheckPoints(x, m.Dim()); err != nil {
		return nil, err
	}
	if guaranteeLimits && m.HasRectLimits() {
		return x, nil
	}
	mask, err := m.Inside(x, guaranteeLimits)
	if err != nil {
		return nil, err
	}

	return tensor.MaskRows(x, mask)
}

// WithObs re-expresses every alternative under the given names and rebuilds
// the union.
func (m *MultiSpace) WithObs(obs []string, match coords.Match) (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.withObs(obs, match) })
}

// WithAxes is WithObs for the positional scheme.
func (m *MultiSpace) WithAxes(axes []int, match coords.Match) (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.withAxes(axes, match) })
}

// WithCoords re-expresses every alternative under another coordinate system
// and rebuilds the union.
func (m *MultiSpace) WithCoords(c *coords.Coordinates, match coords.Match) (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.withCoords(c, match) })
}

// WithAutofillAxes numbers the dimensions 0..dim-1 in current order across
// all alternatives. With axes already set, it returns the union unchanged
// unless overwrite is true.
func (m *MultiSpace) WithAutofillAxes(overwrite bool) (Region, error) {
	if m.HasAxes() && !overwrite {
		return m, nil
	}

	return m.mapAlts(func(s *Space) (*Space, error) { return s.withAutofillAxes(overwrite) })
}

// DropObs removes the name scheme from every alternative.
func (m *MultiSpace) DropObs() (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.dropObs() })
}

// DropAxes removes the positional scheme from every alternative.
func (m *MultiSpace) DropAxes() (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.dropAxes() })
}

// Subspace extracts the selected dimensions from every alternative and
// rebuilds the union.
func (m *MultiSpace) Subspace(obs []string, axes []int) (Region, error) {
	return m.mapAlts(func(s *Space) (*Space, error) { return s.subspace(obs, axes) })
}

// Add unions the union with further regions.
func (m *MultiSpace) Add(others ...Region) (Region, error) {
	return AddSpaces(append([]Region{m}, others...)...)
}

// Combine fails: the cross-product is defined between plain spaces only.
func (m *MultiSpace) Combine(others ...Region) (Region, error) {
	return CombineSpaces(append([]Region{m}, others...)...)
}

// Alternatives returns a copy of the union members.
func (m *MultiSpace) Alternatives() []*Space {
	out := make([]*Space, len(m.alts))
	copy(out, m.alts)

	return out
}

// String renders the union for diagnostics.
func (m *MultiSpace) String() string {
	return fmt.Sprintf("MultiSpace(%s, %d alternatives)", m.coords, len(m.alts))
}

func (m *MultiSpace) sealed() {}

// mapAlts applies f to every alternative and rebuilds the union from the
// results, re-running the full alignment.
func (m *MultiSpace) mapAlts(f func(*Space) (*Space, error)) (Region, error) {
	out := make([]Region, len(m.alts))
	for i, a := range m.alts {
		na, err := f(a)
		if err != nil {
			return nil, err
		}
		out[i] = na
	}

	return NewMulti(out...)
}

func setEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[T]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}

	return true
}
