package space_test

import (
	"fmt"

	"github.com/katalvlaran/obspace/coords"
	"github.com/katalvlaran/obspace/space"
)

// //////////////////////////////////////////////////////////////////////////////
// Example: building a bounded space
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A one-dimensional invariant-mass window from 5.0 to 5.6.
//	The observable is named, so downstream code can address the
//	dimension by name rather than by position.
//
// Complexity: O(d) construction for a d-dimensional box.
//
// ExampleNew demonstrates the named-box constructor and its accessors.
func ExampleNew() {
	mass, err := space.New(
		space.WithObs("mass"),
		space.WithRect([]float64{5.0}, []float64{5.6}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lower, upper, _ := mass.ConcreteRect()
	width, _ := mass.RectArea()
	fmt.Println(mass)
	fmt.Printf("window=[%.1f, %.1f]\n", lower[0], upper[0])
	fmt.Printf("width=%.1f\n", width)
	// Output:
	// Space(coords(obs=[mass], axes=[]), state=Defined)
	// window=[5.0, 5.6]
	// width=0.6
}

// //////////////////////////////////////////////////////////////////////////////
// Example: membership tests
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-dimensional acceptance box [0,1]×[0,2]. Points on the edges
//	count as inside; Filter keeps only the accepted rows.
//
// Complexity: O(n·d) for n points in d dimensions.
//
// ExampleSpace_Inside demonstrates point membership and filtering.
func ExampleSpace_Inside() {
	box, _ := space.New(
		space.WithObs("x", "y"),
		space.WithRect([]float64{0, 0}, []float64{1, 2}),
	)

	points := [][]float64{
		{0.5, 1.0}, // interior
		{1.5, 1.0}, // beyond x
		{1.0, 2.0}, // upper corner, edges included
	}
	in, _ := box.Inside(points, false)
	kept, _ := box.Filter(points, false)
	fmt.Println("inside:", in)
	fmt.Println("kept:", len(kept))
	// Output:
	// inside: [true false true]
	// kept: 2
}

// //////////////////////////////////////////////////////////////////////////////
// Example: reordering observables
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two datasets store the same observables in different column
//	orders. WithObs re-expresses the space in the requested order;
//	the bounds follow their dimensions.
//
// ExampleSpace_WithObs demonstrates a name-driven reorder.
func ExampleSpace_WithObs() {
	xy, _ := space.New(
		space.WithObs("x", "y"),
		space.WithRect([]float64{0, 10}, []float64{1, 20}),
	)

	yx, _ := xy.WithObs([]string{"y", "x"}, coords.MatchExact)
	lower, upper, _ := yx.ConcreteRect()
	fmt.Println("obs:", yx.Obs())
	fmt.Println("lower:", lower)
	fmt.Println("upper:", upper)
	// Output:
	// obs: [y x]
	// lower: [10 0]
	// upper: [20 1]
}

// //////////////////////////////////////////////////////////////////////////////
// Example: carving out a subspace
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A three-dimensional fit domain; a plotting routine needs only the
//	(z, x) projection, in that order.
//
// ExampleSpace_Subspace demonstrates dimension selection by name.
func ExampleSpace_Subspace() {
	cube, _ := space.New(
		space.WithObs("x", "y", "z"),
		space.WithRect([]float64{0, 0, 0}, []float64{1, 2, 3}),
	)

	zx, _ := cube.Subspace([]string{"z", "x"}, nil)
	lower, upper, _ := zx.ConcreteRect()
	fmt.Println("obs:", zx.Obs())
	fmt.Println("box:", lower, upper)
	// Output:
	// obs: [z x]
	// box: [0 0] [3 1]
}

// //////////////////////////////////////////////////////////////////////////////
// Example: cross products
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Independent one-dimensional domains for x and y are united into a
//	single two-dimensional domain. Shared names would have to agree on
//	their bounds.
//
// ExampleCombineSpaces demonstrates the cross product of disjoint spaces.
func ExampleCombineSpaces() {
	x, _ := space.New(space.WithObs("x"), space.WithRect([]float64{0}, []float64{1}))
	y, _ := space.New(space.WithObs("y"), space.WithRect([]float64{0}, []float64{2}))

	xy, err := space.CombineSpaces(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	area, _ := xy.RectArea()
	fmt.Println("obs:", xy.Obs())
	fmt.Printf("area=%.1f\n", area)
	// Output:
	// obs: [x y]
	// area=2.0
}

// //////////////////////////////////////////////////////////////////////////////
// Example: unions of disjoint windows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A signal window [0,1] and a sideband [2,4] over the same
//	observable. Their union accepts points from either window and
//	reports the summed width.
//
// ExampleSpace_Add demonstrates union construction and membership.
func ExampleSpace_Add() {
	signal, _ := space.New(space.WithObs("x"), space.WithRect([]float64{0}, []float64{1}))
	sideband, _ := space.New(space.WithObs("x"), space.WithRect([]float64{2}, []float64{4}))

	both, err := signal.Add(sideband)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	in, _ := both.Inside([][]float64{{0.5}, {1.5}, {3.0}}, false)
	total, _ := both.RectArea()
	fmt.Println("alternatives:", len(both.Alternatives()))
	fmt.Println("inside:", in)
	fmt.Printf("total width=%.1f\n", total)
	// Output:
	// alternatives: 2
	// inside: [true false true]
	// total width=3.0
}

// //////////////////////////////////////////////////////////////////////////////
// Example: comparing regions
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same box described with its observables in opposite orders.
//	Equal aligns the coordinate systems before comparing bounds, so
//	the storage order does not matter.
//
// ExampleEqual demonstrates an order-insensitive region comparison.
func ExampleEqual() {
	a, _ := space.New(
		space.WithObs("x", "y"),
		space.WithRect([]float64{0, 0}, []float64{1, 2}),
	)
	b, _ := space.New(
		space.WithObs("y", "x"),
		space.WithRect([]float64{0, 0}, []float64{2, 1}),
	)

	verdict, err := space.Equal(a, b, false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	same, _ := verdict.Concrete()
	fmt.Println("same region:", same)
	// Output:
	// same region: true
}
