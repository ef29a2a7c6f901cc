// Package obspace describes where your data lives — named observable
// spaces with rectangular or arbitrarily shaped limits, unions, cross
// products, and Monte-Carlo integration on top.
//
// 🚀 What is obspace?
//
//	A small algebra of domains for numeric analysis pipelines:
//		• Coordinates: dual addressing by observable name and storage axis
//		• Limits: boxes, sentinel ∓∞ edges, predicate shapes
//		• Spaces: coordinates + limits, reorderable and sliceable
//		• Unions: disjoint windows acting as one region
//		• Cross products: independent domains united by name
//		• Integration: uniform sampling and Monte-Carlo estimates
//
// ✨ Why obspace?
//
//   - Name-driven – reorder to a dataset's column order, bounds follow
//   - Edge-exact – closed intervals, deliberate ±∞ sentinels
//   - Deferred-aware – comparisons over unresolved bounds stay lazy
//   - Predicates welcome – curved regions keep exact membership
//
// Everything is organized under six subpackages:
//
//	tensor/    — resolved-or-deferred scalars, point-batch helpers
//	bound/     — bound values: concrete floats and ∓∞ sentinels
//	coords/    — observable names, storage axes, reorders and matching
//	limit/     — rectangular and predicate limits over dimensions
//	space/     — Space, MultiSpace, combinators and comparisons
//	integrate/ — uniform sampling and Monte-Carlo integration
//
// Quick ASCII example:
//
//	  y
//	2 ┌───────┐
//	  │       │      x ∈ [0, 1], y ∈ [0, 2]
//	0 └───────┘
//	  0       1  x
//
//	a two-dimensional box; Inside, Filter, RectArea and the
//	reordering transforms all operate on it directly.
//
// Dive into examples/ for fit-domain, sideband and phase-space
// walkthroughs.
//
//	go get github.com/katalvlaran/obspace
package obspace
