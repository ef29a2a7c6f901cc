// Package coords implements the ordered, duplicate-free set of dimension
// identifiers a domain is addressed by: observable names ("obs"), integer
// positions ("axes"), or both in parallel.
//
// What:
//
//   - Coordinates — immutable ordered identifiers with n = Dim().
//   - Reordering — WithObs/WithAxes re-express the order; Match controls how
//     far the requested set may deviate (exact permutation, superset with
//     extras ignored, subset shrinking the result).
//   - Permutations — ReorderIndicesByObs/ByAxes yield, for each element of a
//     requested order, its index in the current order; ReorderPoints applies
//     that permutation along the last axis of a point batch.
//
// Equality is deliberately coarse: two Coordinates are equal when their obs
// sets are both present and equal OR their axes sets are both present and
// equal, a many-to-one relation. Any structure keyed by Coordinates must
// therefore match by linear scan, never by hashing.
//
// Errors:
//
//   - ErrUnderdefined: neither obs nor axes specified (or required but absent).
//   - ErrIncompatible: mismatched lengths, unknown identifiers, or a set
//     deviation the Match flags do not permit.
//   - ErrDuplicate: repeated identifier within one addressing scheme.
//   - ErrOverdefined: both reorder modes requested at once.
//
// All transforms return new instances; Coordinates never mutate.
package coords
