package space

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/limit"
	"github.com/katalvlaran/obspace/tensor"
)

// Space is one domain region: a coordinate system plus keyed limit entries
// covering every dimension exactly once. Spaces are immutable after
// construction; every transform returns a new instance sharing the
// untouched parts.
type Space struct {
	coords  *coords.Coordinates
	state   limit.State
	entries []entry // nil unless state == Defined
}

// New builds a Space from functional options: coordinate options (WithObs,
// WithAxes, WithCoords) plus at most one limit specification style
// (WithRect, WithRectBounds, WithPredicate, WithLimit, WithSubLimit /
// WithSubLimitAxes, WithoutLimits). No limit option leaves the space Unset.
//
// A bare box or predicate is split into its sublimits and distributed
// across the dimensions in order; keyed sub-limits must cover every
// dimension exactly once.
func New(opts ...Option) (*Space, error) {
	b := &builder{}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}

	return b.finalize()
}

func (b *builder) finalize() (*Space, error) {
	c := b.coords
	if c != nil && (len(b.obs) > 0 || len(b.axes) > 0) {
		return nil, fmt.Errorf("%w: coordinates given via both WithCoords and WithObs/WithAxes", ErrOverdefined)
	}
	if c == nil {
		var err error
		if c, err = coords.New(b.obs, b.axes); err != nil {
			return nil, err
		}
	}
	if n := b.limitStyles(); n > 1 {
		return nil, fmt.Errorf("%w: %d limit specification styles, want at most one", ErrOverdefined, n)
	}

	s := &Space{coords: c, state: limit.Unset}
	switch {
	case b.absent:
		s.state = limit.Absent

	case b.rect != nil:
		l, err := limit.NewRect(b.rect.lower, b.rect.upper, limit.WithDim(c.Dim()))
		if err != nil {
			return nil, err
		}
		s.state = limit.Defined
		s.entries = distribute(c, l)

	case b.pred != nil:
		l, err := limit.NewPredicate(b.pred.fn, b.pred.lower, b.pred.upper, limit.WithDim(c.Dim()))
		if err != nil {
			return nil, err
		}
		s.state = limit.Defined
		s.entries = distribute(c, l)

	case b.whole != nil:
		if b.whole.Dim() != c.Dim() {
			return nil, fmt.Errorf("%w: limit spans %d dimensions, coordinates %d",
				limit.ErrShapeMismatch, b.whole.Dim(), c.Dim())
		}
		switch b.whole.State() {
		case limit.Absent:
			s.state = limit.Absent
		case limit.Defined:
			s.state = limit.Defined
			s.entries = distribute(c, b.whole)
		}

	case len(b.subs) > 0:
		entries, err := keyedEntries(c, b.subs)
		if err != nil {
			return nil, err
		}
		s.state = limit.Defined
		s.entries = entries

	case b.carried != nil:
		specs, err := carriedSpecs(c, b.carried)
		if err != nil {
			return nil, err
		}
		entries, err := keyedEntries(c, specs)
		if err != nil {
			return nil, err
		}
		s.state = limit.Defined
		s.entries = entries
	}

	return s, nil
}

// distribute splits l into its sublimits and assigns them to consecutive
// dimension runs of c, in order.
func distribute(c *coords.Coordinates, l *limit.Limit) []entry {
	obs, axes := c.Obs(), c.Axes()
	subs := l.Sublimits()
	entries := make([]entry, 0, len(subs))
	i := 0
	for _, sub := range subs {
		j := i + sub.Dim()
		e := entry{lim: sub}
		if obs != nil {
			e.obs = obs[i:j]
		}
		if axes != nil {
			e.axes = axes[i:j]
		}
		entries = append(entries, e)
		i = j
	}

	return entries
}

// keyedEntries validates keyed sub-limit specs against c and normalizes them
// into entries: every spec's limit is split into sublimits over its key, the
// keys together must cover every dimension exactly once, and each entry gets
// both addressing schemes when c carries both.
func keyedEntries(c *coords.Coordinates, specs []subSpec) ([]entry, error) {
	cObs, cAxes := c.Obs(), c.Axes()
	byObs := specs[0].obs != nil
	for _, sp := range specs {
		if (sp.obs != nil) != byObs {
			return nil, fmt.Errorf("%w: mix of obs-keyed and axes-keyed sub-limits", ErrOverdefined)
		}
	}
	if byObs && cObs == nil {
		return nil, fmt.Errorf("%w: obs-keyed sub-limits for a space without obs", coords.ErrIncompatible)
	}
	if !byObs && cAxes == nil {
		return nil, fmt.Errorf("%w: axes-keyed sub-limits for a space without axes", coords.ErrIncompatible)
	}

	covered := make([]bool, c.Dim())
	out := make([]entry, 0, len(specs))
	for _, sp := range specs {
		if sp.lim == nil {
			panic(panicNilLimit)
		}
		keyLen := len(sp.obs)
		if !byObs {
			keyLen = len(sp.axes)
		}
		if sp.lim.Dim() != keyLen {
			return nil, fmt.Errorf("%w: limit spans %d dimensions, key selects %d",
				limit.ErrShapeMismatch, sp.lim.Dim(), keyLen)
		}
		if sp.lim.State() != limit.Defined {
			return nil, fmt.Errorf("%w: sub-limit in state %s", ErrLimitsIncompatible, sp.lim.State())
		}

		pos := make([]int, keyLen)
		for i := 0; i < keyLen; i++ {
			var p int
			if byObs {
				p = indexOf(cObs, sp.obs[i])
			} else {
				p = indexOf(cAxes, sp.axes[i])
			}
			if p < 0 {
				if byObs {
					return nil, fmt.Errorf("%w: unknown dimension %q", coords.ErrIncompatible, sp.obs[i])
				}

				return nil, fmt.Errorf("%w: unknown dimension %d", coords.ErrIncompatible, sp.axes[i])
			}
			if covered[p] {
				return nil, fmt.Errorf("%w: dimension at position %d covered twice", ErrOverdefined, p)
			}
			covered[p] = true
			pos[i] = p
		}

		// Normalize: hold rectangular geometry per dimension, predicates
		// as one joint entry.
		i := 0
		for _, sub := range sp.lim.Sublimits() {
			j := i + sub.Dim()
			e := entry{lim: sub}
			if cObs != nil {
				e.obs = make([]string, 0, j-i)
				for _, p := range pos[i:j] {
					e.obs = append(e.obs, cObs[p])
				}
			}
			if cAxes != nil {
				e.axes = make([]int, 0, j-i)
				for _, p := range pos[i:j] {
					e.axes = append(e.axes, cAxes[p])
				}
			}
			out = append(out, e)
			i = j
		}
	}
	for p, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("%w: dimension at position %d not covered", ErrLimitsUnderdefined, p)
		}
	}

	return out, nil
}

// carriedSpecs re-expresses entries taken over from an existing space as
// keyed specs anchored on a scheme the new coordinates share.
func carriedSpecs(c *coords.Coordinates, carried []entry) ([]subSpec, error) {
	anchor := carried[0]
	useObs := c.HasObs() && anchor.obs != nil
	if !useObs && !(c.HasAxes() && anchor.axes != nil) {
		return nil, fmt.Errorf("%w: carried limits cannot be addressed under the new coordinates",
			coords.ErrIncompatible)
	}
	specs := make([]subSpec, len(carried))
	for i, e := range carried {
		if useObs {
			specs[i] = subSpec{obs: e.obs, lim: e.lim}
		} else {
			specs[i] = subSpec{axes: e.axes, lim: e.lim}
		}
	}

	return specs, nil
}

// Coords returns the coordinate system.
func (s *Space) Coords() *coords.Coordinates { return s.coords }

// Dim reports the number of dimensions.
func (s *Space) Dim() int { return s.coords.Dim() }

// HasObs reports whether the dimensions are named.
func (s *Space) HasObs() bool { return s.coords.HasObs() }

// HasAxes reports whether the dimensions are numbered.
func (s *Space) HasAxes() bool { return s.coords.HasAxes() }

// Obs returns a copy of the dimension names, or nil.
func (s *Space) Obs() []string { return s.coords.Obs() }

// Axes returns a copy of the dimension numbers, or nil.
func (s *Space) Axes() []int { return s.coords.Axes() }

// State reports the three-valued limit state.
func (s *Space) State() limit.State { return s.state }

// HasLimits reports whether an actual region is recorded.
func (s *Space) HasLimits() bool { return s.state == limit.Defined }

// HasRectLimits reports whether every stored limit is purely rectangular.
func (s *Space) HasRectLimits() bool {
	if s.state != limit.Defined {
		return false
	}
	for _, e := range s.entries {
		if !e.lim.HasRectLimits() {
			return false
		}
	}

	return true
}

// Alternatives returns the space as its own sole union member.
func (s *Space) Alternatives() []*Space { return []*Space{s} }

func (s *Space) sealed() {}

// RectLimits reconstructs the full lower/upper bound vectors in the space's
// own coordinate order. Available only on purely rectangular spaces; fails
// with ErrNoRectLimits otherwise.
//
// Complexity: O(dim²) due to name lookups.
func (s *Space) RectLimits() (lower, upper []bound.Value, err error) {
	if s.state != limit.Defined {
		return nil, nil, fmt.Errorf("%w: state %s", ErrNoRectLimits, s.state)
	}
	if !s.HasRectLimits() {
		return nil, nil, fmt.Errorf("%w: predicate-shaped limits", ErrNoRectLimits)
	}

	lower = make([]bound.Value, s.Dim())
	upper = make([]bound.Value, s.Dim())
	cObs, cAxes := s.coords.Obs(), s.coords.Axes()
	for _, e := range s.entries {
		lo, up, lerr := e.lim.RectLimits()
		if lerr != nil {
			return nil, nil, lerr
		}
		for i, p := range entryPositions(cObs, cAxes, e) {
			lower[p], upper[p] = lo[i], up[i]
		}
	}

	return lower, upper, nil
}

// RectLower returns the reconstructed lower bound vector.
func (s *Space) RectLower() ([]bound.Value, error) {
	lo, _, err := s.RectLimits()

	return lo, err
}

// RectUpper returns the reconstructed upper bound vector.
func (s *Space) RectUpper() ([]bound.Value, error) {
	_, up, err := s.RectLimits()

	return up, err
}

// ConcreteRect materializes the box as plain floats, sentinels mapped to
// ∓Inf; fails with tensor.ErrDeferredValue on unresolved edges.
func (s *Space) ConcreteRect() (lower, upper []float64, err error) {
	lo, up, err := s.RectLimits()
	if err != nil {
		return nil, nil, err
	}
	if lower, err = bound.Materialize(lo, bound.Lower); err != nil {
		return nil, nil, err
	}
	if upper, err = bound.Materialize(up, bound.Upper); err != nil {
		return nil, nil, err
	}

	return lower, upper, nil
}

// RectArea returns the box volume, the product of per-dimension widths.
// Sentinel edges make it +Inf.
func (s *Space) RectArea() (float64, error) {
	lo, up, err := s.ConcreteRect()
	if err != nil {
		return 0, err
	}
	widths := make([]float64, len(lo))
	floats.SubTo(widths, up, lo)

	return floats.Prod(widths), nil
}

// Inside reports row-wise membership of x, columns following the space's
// own coordinate order. Purely rectangular spaces test the reconstructed
// box in a single pass; mixed shapes AND together the per-entry verdicts,
// each evaluated on its gathered column slice. guaranteeLimits
// short-circuits a rectangular space to all-true.
//
// Complexity: O(rows × dim) for rectangular spaces.
func (s *Space) Inside(x [][]float64, guaranteeLimits bool) ([]bool, error) {
	if s.state != limit.Defined {
		return nil, fmt.Errorf("%w: state %s", limit.ErrNoLimits, s.state)
	}
	if err := tensor.CheckPoints(x, s.Dim()); err != nil {
		return nil, err
	}

	if s.HasRectLimits() {
		if guaranteeLimits {
			return allTrue(len(x)), nil
		}
		lo, up, err := s.ConcreteRect()
		if err != nil {
			return nil, err
		}
		out := make([]bool, len(x))
		for i, row := range x {
			in := true
			for d := 0; d < len(row) && in; d++ {
				in = lo[d] <= row[d] && row[d] <= up[d]
			}
			out[i] = in
		}

		return out, nil
	}

	cObs, cAxes := s.coords.Obs(), s.coords.Axes()
	var mask []bool
	for _, e := range s.entries {
		sub, err := tensor.GatherCols(x, entryPositions(cObs, cAxes, e))
		if err != nil {
			return nil, err
		}
		in, err := e.lim.Inside(sub, guaranteeLimits)
		if err != nil {
			return nil, err
		}
		if mask == nil {
			mask = in
			continue
		}
		if mask, err = tensor.AndMask(mask, in); err != nil {
			return nil, err
		}
	}

	return mask, nil
}

// Filter keeps only the rows of x inside the space. The rectangular
// guarantee short-circuit returns the input batch as-is.
func (s *Space) Filter(x [][]float64, guaranteeLimits bool) ([][]float64, error) {
	if s.state != limit.Defined {
		return nil, fmt.Errorf("%w: state %s", limit.ErrNoLimits, s.state)
	}
	if err := tensor.CheckPoints(x, s.Dim()); err != nil {
		return nil, err
	}
	if guaranteeLimits && s.HasRectLimits() {
		return x, nil
	}
	mask, err := s.Inside(x, guaranteeLimits)
	if err != nil {
		return nil, err
	}

	return tensor.MaskRows(x, mask)
}

// WithObs re-expresses the space under the given dimension names: a
// permutation of the current names reorders, a superset request (with
// coords.MatchSuperset) is filtered down to the known names, a subset
// request (with coords.MatchSubset) shrinks the space to those dimensions,
// carving limits as needed.
func (s *Space) WithObs(obs []string, m coords.Match) (Region, error) {
	return regionOrErr(s.withObs(obs, m))
}

// WithAxes is WithObs for the positional scheme.
func (s *Space) WithAxes(axes []int, m coords.Match) (Region, error) {
	return regionOrErr(s.withAxes(axes, m))
}

// WithCoords re-expresses the space under another coordinate system,
// following every scheme the two sides share; the schemes must agree on how
// they assign dimensions.
func (s *Space) WithCoords(c *coords.Coordinates, m coords.Match) (Region, error) {
	return regionOrErr(s.withCoords(c, m))
}

// WithAutofillAxes numbers the dimensions 0..dim-1 in current order. With
// axes already set, it returns the space unchanged unless overwrite is true.
func (s *Space) WithAutofillAxes(overwrite bool) (Region, error) {
	return regionOrErr(s.withAutofillAxes(overwrite))
}

// DropObs removes the name scheme; the space must carry axes.
func (s *Space) DropObs() (Region, error) {
	return regionOrErr(s.dropObs())
}

// DropAxes removes the positional scheme; the space must carry obs.
func (s *Space) DropAxes() (Region, error) {
	return regionOrErr(s.dropAxes())
}

// Subspace extracts the dimensions selected by exactly one of obs/axes.
// Stored entries are matched longest key first: a fully requested key is
// taken whole, a partially requested one is carved through the limit's own
// subspace extraction.
func (s *Space) Subspace(obs []string, axes []int) (Region, error) {
	return regionOrErr(s.subspace(obs, axes))
}

// WithLimits returns a space with the same coordinates and a fresh limit
// state built from opts; no options yields an Unset space.
func (s *Space) WithLimits(opts ...Option) (*Space, error) {
	b := &builder{}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	if b.coords != nil || len(b.obs) > 0 || len(b.axes) > 0 {
		return nil, fmt.Errorf("%w: coordinate options passed to WithLimits", ErrOverdefined)
	}
	b.coords = s.coords

	return b.finalize()
}

// Copy rebuilds the space with opts as overrides: coordinate options
// replace the coordinate system, limit options replace the limit state, and
// anything not overridden carries over.
func (s *Space) Copy(opts ...Option) (*Space, error) {
	b := &builder{}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	if b.coords == nil && len(b.obs) == 0 && len(b.axes) == 0 {
		b.coords = s.coords
	}
	if b.limitStyles() == 0 {
		switch s.state {
		case limit.Absent:
			b.absent = true
		case limit.Defined:
			b.carried = s.entries
		}
	}

	return b.finalize()
}

// Add unions the space with others into a MultiSpace.
func (s *Space) Add(others ...Region) (Region, error) {
	return AddSpaces(append([]Region{s}, others...)...)
}

// Combine builds the cross-product of the space with others over disjoint
// dimension sets.
func (s *Space) Combine(others ...Region) (Region, error) {
	return CombineSpaces(append([]Region{s}, others...)...)
}

// String renders the space for diagnostics.
func (s *Space) String() string {
	return fmt.Sprintf("Space(%s, state=%s)", s.coords, s.state)
}

func (s *Space) withObs(obs []string, m coords.Match) (*Space, error) {
	nc, err := s.coords.WithObs(obs, m)
	if err != nil {
		return nil, err
	}
	if nc.Dim() == s.Dim() {
		// Identity permutation: nothing to re-express.
		if equalSlices(nc.Obs(), s.coords.Obs()) {
			return s, nil
		}

		return &Space{coords: nc, state: s.state, entries: s.entries}, nil
	}

	return s.shrinkTo(nc, nc.Obs(), nil)
}

func (s *Space) withAxes(axes []int, m coords.Match) (*Space, error) {
	nc, err := s.coords.WithAxes(axes, m)
	if err != nil {
		return nil, err
	}
	if nc.Dim() == s.Dim() {
		if equalSlices(nc.Axes(), s.coords.Axes()) {
			return s, nil
		}

		return &Space{coords: nc, state: s.state, entries: s.entries}, nil
	}

	return s.shrinkTo(nc, nil, nc.Axes())
}

func (s *Space) withCoords(c *coords.Coordinates, m coords.Match) (*Space, error) {
	var viaObs, viaAxes *Space
	var err error
	if s.HasObs() && c.HasObs() {
		if viaObs, err = s.withObs(c.Obs(), m); err != nil {
			return nil, err
		}
	}
	if s.HasAxes() && c.HasAxes() {
		if viaAxes, err = s.withAxes(c.Axes(), m); err != nil {
			return nil, err
		}
	}
	if viaObs != nil && viaAxes != nil {
		if !equalSlices(viaObs.Obs(), viaAxes.Obs()) || !equalSlices(viaObs.Axes(), viaAxes.Axes()) {
			return nil, fmt.Errorf("%w: obs and axes of %s assign dimensions differently",
				coords.ErrIncompatible, c)
		}
	}
	switch {
	case viaAxes != nil:
		return viaAxes, nil
	case viaObs != nil:
		return viaObs, nil
	default:
		return nil, fmt.Errorf("%w: no addressing scheme shared with %s", coords.ErrIncompatible, c)
	}
}

func (s *Space) withAutofillAxes(overwrite bool) (*Space, error) {
	if s.HasAxes() && !overwrite {
		return s, nil
	}
	nc, err := s.coords.WithAutofillAxes(overwrite)
	if err != nil {
		return nil, err
	}
	if s.state != limit.Defined {
		return &Space{coords: nc, state: s.state}, nil
	}

	cObs, cAxes := s.coords.Obs(), s.coords.Axes()
	entries := make([]entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = entry{obs: e.obs, axes: entryPositions(cObs, cAxes, e), lim: e.lim}
	}

	return &Space{coords: nc, state: s.state, entries: entries}, nil
}

func (s *Space) dropObs() (*Space, error) {
	nc, err := s.coords.DropObs()
	if err != nil {
		return nil, err
	}
	if s.state != limit.Defined {
		return &Space{coords: nc, state: s.state}, nil
	}
	entries := make([]entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = entry{axes: e.axes, lim: e.lim}
	}

	return &Space{coords: nc, state: s.state, entries: entries}, nil
}

func (s *Space) dropAxes() (*Space, error) {
	nc, err := s.coords.DropAxes()
	if err != nil {
		return nil, err
	}
	if s.state != limit.Defined {
		return &Space{coords: nc, state: s.state}, nil
	}
	entries := make([]entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = entry{obs: e.obs, lim: e.lim}
	}

	return &Space{coords: nc, state: s.state, entries: entries}, nil
}

func (s *Space) subspace(obs []string, axes []int) (*Space, error) {
	switch {
	case obs != nil && axes != nil:
		return nil, fmt.Errorf("%w: both obs and axes requested", ErrOverdefined)
	case obs != nil:
		return s.withObs(obs, coords.MatchSubset)
	case axes != nil:
		return s.withAxes(axes, coords.MatchSubset)
	default:
		return nil, fmt.Errorf("%w: neither obs nor axes requested", coords.ErrUnderdefined)
	}
}

// shrinkTo builds the space over nc, a strict dimension subset of s, with
// entries extracted for the surviving dimensions.
func (s *Space) shrinkTo(nc *coords.Coordinates, reqObs []string, reqAxes []int) (*Space, error) {
	if s.state != limit.Defined {
		return &Space{coords: nc, state: s.state}, nil
	}
	entries, err := s.extractEntries(reqObs, reqAxes)
	if err != nil {
		return nil, err
	}

	return &Space{coords: nc, state: s.state, entries: entries}, nil
}

// extractEntries collects the entries covering the requested dimensions,
// longest key first. A fully requested key keeps its entry (and the limit's
// identity); a partially requested key is carved via Limit.Subspace, which
// fails with limit.ErrInvalidSubspace on predicate limits. Matched
// dimensions leave the remaining request so none is matched twice.
func (s *Space) extractEntries(reqObs []string, reqAxes []int) ([]entry, error) {
	cObs, cAxes := s.coords.Obs(), s.coords.Axes()

	var req []int
	if reqObs != nil {
		req = make([]int, len(reqObs))
		for i, o := range reqObs {
			req[i] = indexOf(cObs, o)
		}
	} else {
		req = make([]int, len(reqAxes))
		for i, a := range reqAxes {
			req[i] = indexOf(cAxes, a)
		}
	}
	remaining := make(map[int]bool, len(req))
	for _, p := range req {
		remaining[p] = true
	}

	order := make([]int, len(s.entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.entries[order[a]].keyLen() > s.entries[order[b]].keyLen()
	})

	out := make([]entry, 0, len(req))
	for _, ei := range order {
		e := s.entries[ei]
		pos := entryPositions(cObs, cAxes, e)
		var keep []int
		for i, p := range pos {
			if remaining[p] {
				keep = append(keep, i)
			}
		}
		if len(keep) == 0 {
			continue
		}
		if len(keep) == e.keyLen() {
			out = append(out, e)
		} else {
			sub, err := e.lim.Subspace(keep)
			if err != nil {
				return nil, err
			}
			ne := entry{lim: sub}
			if e.obs != nil {
				ne.obs = pick(e.obs, keep)
			}
			if e.axes != nil {
				ne.axes = pick(e.axes, keep)
			}
			out = append(out, ne)
		}
		for _, i := range keep {
			delete(remaining, pos[i])
		}
	}

	return out, nil
}

// regionOrErr lifts a typed result into the interface without wrapping a
// typed nil.
func regionOrErr(s *Space, err error) (Region, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

func entryPositions(cObs []string, cAxes []int, e entry) []int {
	if e.obs != nil && cObs != nil {
		pos := make([]int, len(e.obs))
		for i, o := range e.obs {
			pos[i] = indexOf(cObs, o)
		}

		return pos
	}
	pos := make([]int, len(e.axes))
	for i, a := range e.axes {
		pos[i] = indexOf(cAxes, a)
	}

	return pos
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}

	return -1
}

func pick[T any](list []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = list[j]
	}

	return out
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func allTrue(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}

	return out
}
