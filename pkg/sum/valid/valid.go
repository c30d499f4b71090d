package valid

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/maybe"
)

// ErrAbsent is the placeholder failure payload produced by FromMaybe for an
// absent value. Callers are expected to replace it with a domain error via
// MapFailure right after the conversion.
var ErrAbsent = errors.New("value is absent")

// Validation is a two-variant container: Valid with a payload or Invalid with
// a non-empty ordered sequence of failure payloads. Unlike result.Result,
// combining Validations with Concat does not short-circuit: failures from
// both sides accumulate. The id and createdAt fields are traceability
// metadata and take no part in Equal.
type Validation[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errs      []E
	isValid   bool
}

func Valid[T, E any](v T) Validation[T, E] {
	return Validation[T, E]{
		value:     v,
		isValid:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Invalid constructs the failure variant. At least one error is required;
// calling it with none is a caller contract violation and panics.
func Invalid[T, E any](errs ...E) Validation[T, E] {
	if len(errs) == 0 {
		panic("valid: Invalid requires at least one error")
	}

	own := make([]E, len(errs))
	copy(own, errs)

	return Validation[T, E]{
		errs:      own,
		isValid:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromMaybe converts an optional value: Present becomes Valid, Absent becomes
// Invalid carrying the ErrAbsent placeholder.
func FromMaybe[T any](m maybe.Maybe[T]) Validation[T, error] {
	if m.IsPresent() {
		return Valid[T, error](m.Value())
	}
	return Invalid[T](error(ErrAbsent))
}

// FromError converts a plain error into the failure variant, unwrapping an
// errors.Join-ed error into its individual accumulated errors. A nil error
// is a caller contract violation, same as Invalid with no errors.
func FromError[T any](err error) Validation[T, error] {
	return Invalid[T](sum.GetErrors(err)...)
}

func (v Validation[T, E]) IsValid() bool {
	return v.isValid
}

func (v Validation[T, E]) IsInvalid() bool {
	return !v.isValid
}

// Value returns the payload, or T's zero value on Invalid.
func (v Validation[T, E]) Value() T {
	return v.value
}

// Errors returns a copy of the accumulated failure payloads, in accumulation
// order. Empty on Valid.
func (v Validation[T, E]) Errors() []E {
	out := make([]E, len(v.errs))
	copy(out, v.errs)
	return out
}

func (v Validation[T, E]) GetOrElse(def T) T {
	if v.isValid {
		return v.value
	}
	return def
}

func (v Validation[T, E]) CreatedAt() time.Time {
	return v.createdAt
}

func (v Validation[T, E]) ID() uuid.UUID {
	return v.id
}

// Concat combines two independently produced Validations:
//
//	Valid(a).Concat(Valid(b))       -> Valid(b), the last value wins
//	Valid(a).Concat(Invalid(es))    -> Invalid(es)
//	Invalid(es).Concat(Valid(b))    -> Invalid(es), no recovery
//	Invalid(e1).Concat(Invalid(e2)) -> Invalid(e1 ++ e2), in call order
//
// Error accumulation is associative; fold Concat left to right over checks
// declared in order to collect every failure deterministically.
func (v Validation[T, E]) Concat(other Validation[T, E]) Validation[T, E] {
	if v.isValid {
		return other
	}
	if other.isValid {
		return v
	}

	joined := make([]E, 0, len(v.errs)+len(other.errs))
	joined = append(joined, v.errs...)
	joined = append(joined, other.errs...)

	return Validation[T, E]{
		errs:      joined,
		isValid:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Collect left-folds Concat across the sequence: Invalid with every error in
// sequence order if any element is Invalid, else Valid with the last
// element's value. An empty sequence yields Valid of T's zero value.
func Collect[T, E any](vs []Validation[T, E]) Validation[T, E] {
	if len(vs) == 0 {
		var zero T
		return Valid[T, E](zero)
	}

	acc := vs[0]
	for _, next := range vs[1:] {
		acc = acc.Concat(next)
	}
	return acc
}

// Map transforms the Valid payload; Invalid passes through untouched.
func Map[In, Out, E any](v Validation[In, E], f func(v In) Out) Validation[Out, E] {
	if v.isValid {
		return Valid[Out, E](f(v.value))
	}
	return Validation[Out, E]{
		errs:      v.errs,
		isValid:   false,
		createdAt: v.createdAt,
		id:        v.id,
	}
}

// MapFailure transforms the whole error sequence of Invalid; Valid passes
// through untouched. The handler may restructure the sequence but must keep
// it non-empty.
func MapFailure[T, E, F any](v Validation[T, E], f func(errs []E) []F) Validation[T, F] {
	if v.isValid {
		return Validation[T, F]{
			value:     v.value,
			isValid:   true,
			createdAt: v.createdAt,
			id:        v.id,
		}
	}

	errs := f(v.Errors())
	if len(errs) == 0 {
		panic("valid: MapFailure handler returned no errors")
	}

	return Validation[T, F]{
		errs:      errs,
		isValid:   false,
		createdAt: v.createdAt,
		id:        v.id,
	}
}

// Bimap applies exactly one of the two transforms depending on the variant,
// retyping both sides.
func Bimap[In, Out, E, F any](v Validation[In, E],
	onFailure func(errs []E) []F,
	onValid func(v In) Out) Validation[Out, F] {

	if v.isValid {
		return Map(MapFailure(v, onFailure), onValid)
	}
	return MapFailure(Map(v, onValid), onFailure)
}

// Fold escapes the algebra: exactly one handler runs and its plain value is
// returned.
func Fold[T, E, Out any](v Validation[T, E],
	onFailure func(errs []E) Out,
	onValid func(v T) Out) Out {

	if v.isValid {
		return onValid(v.value)
	}
	return onFailure(v.Errors())
}

// Matcher holds one handler per variant. Both are required.
type Matcher[T, E, Out any] struct {
	Valid   func(v T) Out
	Invalid func(errs []E) Out
}

// Match dispatches exhaustively on the variant. A nil handler is a caller
// contract violation and panics.
func Match[T, E, Out any](v Validation[T, E], h Matcher[T, E, Out]) Out {
	if h.Valid == nil || h.Invalid == nil {
		panic("valid: Match requires both Valid and Invalid handlers")
	}

	if v.isValid {
		return h.Valid(v.value)
	}
	return h.Invalid(v.Errors())
}

// Join flattens the failure side into a single error via errors.Join. Valid
// yields nil. The inverse of FromError.
func Join[T any](v Validation[T, error]) error {
	if v.isValid {
		return nil
	}
	return errors.Join(v.errs...)
}

// Equal reports whether both values hold the same variant, with an equal
// payload for Valid or equal error sequences in the same order for Invalid.
// Traceability metadata is ignored.
func Equal[T, E comparable](a, b Validation[T, E]) bool {
	if a.isValid != b.isValid {
		return false
	}
	if a.isValid {
		return a.value == b.value
	}
	if len(a.errs) != len(b.errs) {
		return false
	}
	for i := range a.errs {
		if a.errs[i] != b.errs[i] {
			return false
		}
	}
	return true
}
