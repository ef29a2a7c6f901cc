package coords_test

import (
	"fmt"

	"github.com/katalvlaran/obspace/coords"
)

// //////////////////////////////////////////////////////////////////////////////
// Example: dual addressing
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Dimensions carry a human-readable name and a storage column at the
//	same time. Reordering by name permutes both schemes together, so
//	the pairing never drifts.
//
// ExampleNew demonstrates dual-scheme coordinates and a name-driven reorder.
func ExampleNew() {
	c, err := coords.New([]string{"energy", "angle"}, []int{0, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	flipped, _ := c.WithObs([]string{"angle", "energy"}, coords.MatchExact)
	fmt.Println("obs:", flipped.Obs())
	fmt.Println("axes:", flipped.Axes())
	// Output:
	// obs: [angle energy]
	// axes: [1 0]
}

// //////////////////////////////////////////////////////////////////////////////
// Example: filling in axes
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A named-only coordinate system gains positional axes 0..n-1 so it
//	can be matched against axis-addressed data.
//
// ExampleCoordinates_WithAutofillAxes demonstrates positional autofill.
func ExampleCoordinates_WithAutofillAxes() {
	named, _ := coords.FromObs("x", "y", "z")

	both, _ := named.WithAutofillAxes(false)
	fmt.Println("axes:", both.Axes())
	// Output:
	// axes: [0 1 2]
}
