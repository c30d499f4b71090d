// Package valid provides the accumulating container Validation[T, E]: Valid
// with a payload or Invalid with a non-empty ordered sequence of failures.
//
// Where result.Result stops at the first failure, Concat keeps going:
// combining two Invalids concatenates their error sequences, so every broken
// rule of a form is reported at once. Combination is right-biased on the
// Valid side, so folding rule checks over one field keeps the last
// transformed value.
//
// Key operations:
// - Valid/Invalid: construct a Validation
// - Concat/Collect: accumulate independently produced results
// - Map/MapFailure/Bimap: transform either side
// - Fold/Match/GetOrElse: extract a plain value
// - FromMaybe/FromError/Join: interop with maybe.Maybe and plain errors
package valid
