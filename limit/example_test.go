package limit_test

import (
	"fmt"

	"github.com/katalvlaran/obspace/bound"
	"github.com/katalvlaran/obspace/limit"
)

// //////////////////////////////////////////////////////////////////////////////
// Example: rectangular limits
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A box [0,1]×[0,2] with edges included, half-open on nothing.
//	Rectangular limits expose their bounds, area, and membership.
//
// ExampleNewRect demonstrates box construction and point filtering.
func ExampleNewRect() {
	box, err := limit.NewRect(bound.Floats(0, 0), bound.Floats(1, 2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	area, _ := box.RectArea()
	in, _ := box.Inside([][]float64{{0.5, 1.0}, {1.5, 1.0}}, false)
	fmt.Println("dim:", box.Dim())
	fmt.Printf("area=%.1f\n", area)
	fmt.Println("inside:", in)
	// Output:
	// dim: 2
	// area=2.0
	// inside: [true false]
}

// //////////////////////////////////////////////////////////////////////////////
// Example: predicate limits
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The triangle x+y ≤ 1 inside the unit square, described by a
//	predicate over whole points. Membership comes from the predicate;
//	the box accessors describe only the enclosing hull.
//
// ExampleNewPredicate demonstrates a non-rectangular domain.
func ExampleNewPredicate() {
	triangle := func(x [][]float64) ([]bool, error) {
		out := make([]bool, len(x))
		for i, row := range x {
			out[i] = row[0]+row[1] <= 1
		}

		return out, nil
	}

	tri, err := limit.NewPredicate(triangle, bound.Floats(0, 0), bound.Floats(1, 1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	in, _ := tri.Inside([][]float64{{0.2, 0.3}, {0.9, 0.9}}, false)
	hull, _ := tri.RectArea()
	fmt.Println("inside:", in)
	fmt.Println("rectangular:", tri.Rectangular())
	fmt.Printf("hull area=%.1f\n", hull)
	// Output:
	// inside: [true false]
	// rectangular: false
	// hull area=1.0
}
