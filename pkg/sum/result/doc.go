// Package result provides the two-sided container Result[T, E]: Ok with a
// success payload or Err with a single failure payload. Composition
// short-circuits on the first Err.
//
// Key operations:
// - Ok/Err: construct a Result
// - Chain: sequence a dependent computation, Err passes through
// - OrElse: try an alternative on Err, Ok passes through
// - Map/MapErr: transform one side without touching the other
// - GetOrElse/Merge/Match: extract a plain value
//
// No operation returns a Go error or panics on well-formed input; failure is
// represented by the Err variant. For accumulating failures across
// independent checks instead of stopping at the first, use valid.Validation.
package result
