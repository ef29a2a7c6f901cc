// Package bound models one edge of a domain region: a concrete number, a
// deferred number, or one of three process-wide sentinels standing for
// "unbounded in this direction".
//
// 🚀 Why sentinels instead of ±Inf?
//
//	Unbounded edges must compose with symbolic and deferred bound machinery,
//	where floating-point infinity is either unavailable or ambiguous. The
//	sentinels are ordinary Values that participate in box construction and
//	comparison; Float maps them to ∓Inf only when numeric arithmetic
//	explicitly asks for it.
//
// ✨ The three sentinels (statically defined, globally shared, immutable):
//
//   - AnyLower — compares ≤ and < against everything, never ≥ or >.
//   - AnyUpper — compares ≥ and > against everything, never ≤ or <
//     (including against itself).
//   - Any — compares true on every ≤ < ≥ > relation.
//
// Equality is stricter than ordering: a sentinel is equal only to the same
// sentinel, never to a number and never to a different sentinel.
//
// Comparison outcomes are tensor.Bool values: resolved immediately whenever
// sentinel rules or concrete numbers decide them, deferred when a deferred
// operand must materialize first. Sentinel rules always win without touching
// the deferred side, so mixed comparisons stay resolved.
//
// Numeric equality is tolerance-based with DefaultAbsTol/DefaultRelTol as
// the single source of truth (see EqualWithin for custom tolerances).
package bound
