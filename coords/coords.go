package coords

import (
	"fmt"
)

// Coordinates is an immutable, ordered, duplicate-free set of dimension
// identifiers, addressable by observable names, integer positions, or both
// in parallel (equal length, element i naming the same dimension).
type Coordinates struct {
	obs  []string // nil when the named scheme is absent
	axes []int    // nil when the positional scheme is absent
}

// New builds Coordinates from obs and/or axes; either may be nil (or empty,
// treated as nil) but not both. Both given must have equal lengths.
// Inputs are copied.
func New(obs []string, axes []int) (*Coordinates, error) {
	if len(obs) == 0 && len(axes) == 0 {
		return nil, ErrUnderdefined
	}
	if len(obs) > 0 && len(axes) > 0 && len(obs) != len(axes) {
		return nil, fmt.Errorf("%w: %d obs vs %d axes", ErrIncompatible, len(obs), len(axes))
	}
	if err := checkUniqueObs(obs); err != nil {
		return nil, err
	}
	if err := checkUniqueAxes(axes); err != nil {
		return nil, err
	}
	c := &Coordinates{}
	if len(obs) > 0 {
		c.obs = append([]string(nil), obs...)
	}
	if len(axes) > 0 {
		c.axes = append([]int(nil), axes...)
	}

	return c, nil
}

// FromObs builds purely name-addressed Coordinates.
func FromObs(obs ...string) (*Coordinates, error) { return New(obs, nil) }

// FromAxes builds purely position-addressed Coordinates.
func FromAxes(axes ...int) (*Coordinates, error) { return New(nil, axes) }

// Dim reports the number of dimensions.
func (c *Coordinates) Dim() int {
	if c.obs != nil {
		return len(c.obs)
	}

	return len(c.axes)
}

// HasObs reports whether the named scheme is present.
func (c *Coordinates) HasObs() bool { return c.obs != nil }

// HasAxes reports whether the positional scheme is present.
func (c *Coordinates) HasAxes() bool { return c.axes != nil }

// Obs returns a copy of the observable names, or nil when absent.
func (c *Coordinates) Obs() []string {
	if c.obs == nil {
		return nil
	}

	return append([]string(nil), c.obs...)
}

// Axes returns a copy of the axis positions, or nil when absent.
func (c *Coordinates) Axes() []int {
	if c.axes == nil {
		return nil
	}

	return append([]int(nil), c.axes...)
}

// WithObs reorders to the requested obs order and returns the new instance;
// axes are permuted alongside when present. Set deviations follow m: extras
// need MatchSuperset (and are ignored), omissions need MatchSubset (and
// shrink the result).
func (c *Coordinates) WithObs(obs []string, m Match) (*Coordinates, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: empty obs requested (use DropObs to remove the scheme)", ErrUnderdefined)
	}
	if c.obs == nil {
		return nil, fmt.Errorf("%w: coordinates carry no obs to reorder by", ErrUnderdefined)
	}
	if err := checkUniqueObs(obs); err != nil {
		return nil, err
	}
	idx, err := deviationIndices(c.obs, obs, m, "obs")
	if err != nil {
		return nil, err
	}

	return c.reordered(idx), nil
}

// WithAxes reorders to the requested axes order; obs are permuted alongside
// when present. Symmetric to WithObs.
func (c *Coordinates) WithAxes(axes []int, m Match) (*Coordinates, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: empty axes requested (use DropAxes to remove the scheme)", ErrUnderdefined)
	}
	if c.axes == nil {
		return nil, fmt.Errorf("%w: coordinates carry no axes to reorder by", ErrUnderdefined)
	}
	if err := checkUniqueAxes(axes); err != nil {
		return nil, err
	}
	idx, err := deviationIndices(c.axes, axes, m, "axes")
	if err != nil {
		return nil, err
	}

	return c.reordered(idx), nil
}

// DropObs removes the named scheme; the positional scheme must remain.
func (c *Coordinates) DropObs() (*Coordinates, error) {
	if c.axes == nil {
		return nil, fmt.Errorf("%w: cannot drop obs without axes", ErrUnderdefined)
	}

	return &Coordinates{axes: append([]int(nil), c.axes...)}, nil
}

// DropAxes removes the positional scheme; the named scheme must remain.
func (c *Coordinates) DropAxes() (*Coordinates, error) {
	if c.obs == nil {
		return nil, fmt.Errorf("%w: cannot drop axes without obs", ErrUnderdefined)
	}

	return &Coordinates{obs: append([]string(nil), c.obs...)}, nil
}

// WithAutofillAxes assigns positions 0..n-1 in the current order. Existing
// axes are only replaced when overwrite is set.
func (c *Coordinates) WithAutofillAxes(overwrite bool) (*Coordinates, error) {
	if c.axes != nil && !overwrite {
		return nil, fmt.Errorf("%w: axes already defined and overwrite not allowed", ErrOverdefined)
	}
	axes := make([]int, c.Dim())
	for i := range axes {
		axes[i] = i
	}
	out := &Coordinates{axes: axes}
	if c.obs != nil {
		out.obs = append([]string(nil), c.obs...)
	}

	return out, nil
}

// Equal reports the deliberately coarse equality: obs sets both present and
// equal, OR axes sets both present and equal.
func (c *Coordinates) Equal(other *Coordinates) bool {
	if other == nil {
		return false
	}
	if c.obs != nil && other.obs != nil && sameSet(c.obs, other.obs) {
		return true
	}
	if c.axes != nil && other.axes != nil && sameSet(c.axes, other.axes) {
		return true
	}

	return false
}

// String renders the coordinates for diagnostics.
func (c *Coordinates) String() string {
	return fmt.Sprintf("coords(obs=%v, axes=%v)", c.obs, c.axes)
}

// reordered clones c gathering both schemes through idx.
func (c *Coordinates) reordered(idx []int) *Coordinates {
	out := &Coordinates{}
	if c.obs != nil {
		out.obs = make([]string, len(idx))
		for i, j := range idx {
			out.obs[i] = c.obs[j]
		}
	}
	if c.axes != nil {
		out.axes = make([]int, len(idx))
		for i, j := range idx {
			out.axes[i] = c.axes[j]
		}
	}

	return out
}

func checkUniqueObs(obs []string) error {
	seen := make(map[string]struct{}, len(obs))
	for _, o := range obs {
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: obs %q", ErrDuplicate, o)
		}
		seen[o] = struct{}{}
	}

	return nil
}

func checkUniqueAxes(axes []int) error {
	seen := make(map[int]struct{}, len(axes))
	for _, a := range axes {
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: axis %d", ErrDuplicate, a)
		}
		seen[a] = struct{}{}
	}

	return nil
}
