// Package integrate estimates integrals over domain regions by plain
// Monte-Carlo, the canonical downstream consumer of the space surface.
//
// What
//
//	Sample draws uniform points from a region: the rectangular box of a
//	plain space, or the box union of a MultiSpace with points allocated to
//	the alternatives proportionally to their volume. MonteCarlo combines
//	sampling with a user integrand and reports the estimate together with
//	its standard error.
//
// Scope
//
//	Sampling is defined for purely rectangular regions with finite edges.
//	Predicate-shaped regions have no box to draw from at this level and
//	fail with space.ErrNoRectLimits; sentinel (open) edges fail with
//	ErrUnboundedDomain. Regions without defined limits fail with
//	ErrNoLimits. Everything runs through the exported Region surface only,
//	so any Region implementation integrates the same way.
//
// Determinism
//
//	All randomness comes from the caller's *rand.Rand (Sample) or from
//	Options.Seed (MonteCarlo): same seed, same points, same estimate.
//
// Errors
//
//	ErrNilIntegrand    - MonteCarlo without a function to integrate
//	ErrBadSamples      - negative draw count, or fewer than two samples
//	ErrUnboundedDomain - sampling a region with infinite edges
//	ErrNoLimits        - sampling a region in state Unset or Absent
//
// See also: package space for the Region surface this package consumes.
package integrate
