// Package tensor supplies the small numeric shim the domain algebra is built
// on: scalar values that may not be concrete yet, three-state booleans for
// comparisons over such values, and shape helpers for batches of points.
//
// What:
//
//   - Scalar — a float64 that is either concrete or deferred behind a
//     Resolver into a lazily-scheduled evaluation context.
//   - Bool — the outcome of comparing possibly-deferred quantities:
//     resolved true/false, or unresolved until its operands materialize.
//   - Point helpers — shape validation, last-axis gather/concat and boolean
//     row masking over [][]float64 batches (rows = events, columns = dims).
//
// Why:
//
//   - Domain bounds may live inside a deferred computation. Membership tests
//     and comparisons must either force them to concrete numbers or propagate
//     "not decidable yet", never a guessed value.
//
// Contract:
//
//   - Concrete() materializes and fails with ErrDeferredValue when the
//     evaluation context cannot supply the value yet.
//   - And/Or/Not/All/Any stay resolved when the outcome is already forced by
//     resolved operands and defer otherwise.
//   - Resolvers must be pure and idempotent; results are not memoized.
//
// Errors:
//
//   - ErrDeferredValue: materialization of an unresolved value.
//   - ErrRagged: rows of a point batch differ in length.
//   - ErrShapeMismatch: point width disagrees with a declared dimension count.
//   - ErrLengthMismatch: two aligned inputs differ in length.
//
// All types are immutable value types and safe for concurrent use.
package tensor
