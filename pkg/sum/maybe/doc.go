// Package maybe provides the optional-value container Maybe[T]: a value is
// either Present with a payload or Absent with no diagnostic.
//
// Key operations:
// - Present/Absent/FromPtr: construct a Maybe
// - Chain: sequence a dependent check, short-circuiting on Absent
// - Map: transform the payload of Present
// - Match: exhaustive dispatch to one handler per variant
// - GetOrElse: extract the payload with a fallback
//
// Maybe carries no failure diagnostic. When the caller needs to know why a
// value was rejected, use result.Result; when several independent checks must
// all report, use valid.Validation (see valid.FromMaybe for the conversion).
package maybe
