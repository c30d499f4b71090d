// Package chain provides a fluent wrapper around result.Result[T, error]
// for building synchronous short-circuiting pipelines.
//
// It composes Chain, Map, OrElse and Match behind a convenient Chain[T]
// type. This enables ergonomic pipelines without dealing directly with
// branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then: switch to a new Result[U, error] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - OrElse: attempt recovery on failure
// - Ensure: run side effects on success without changing the result
// - Finally/GetOrElse: collapse the chain into a final value
package chain
