package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant container: Ok with a success payload or Err with a
// single failure payload. Both sides are generic; the id and createdAt fields
// are traceability metadata and take no part in Equal.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errFrom rebuilds an Err at a new success type, preserving metadata.
func errFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload, or T's zero value on Err.
func (r Result[T, E]) Value() T {
	return r.value
}

// Error returns the failure payload, or E's zero value on Ok.
func (r Result[T, E]) Error() E {
	return r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) GetOrElse(def T) T {
	if r.isOk {
		return r.value
	}
	return def
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// Chain sequences a dependent computation; Err passes through untouched and
// f is not called.
func Chain[In, Out, E any](r Result[In, E], f func(v In) Result[Out, E]) Result[Out, E] {
	if r.isOk {
		return f(r.value)
	}
	return errFrom[In, Out](r)
}

// OrElse is the recovery dual of Chain: on Err the handler may produce an
// alternative Result, on Ok the value passes through untouched. Chaining
// several OrElse calls tries alternatives left to right, stopping at the
// first Ok or the last attempted Err.
func OrElse[T, E, F any](r Result[T, E], f func(e E) Result[T, F]) Result[T, F] {
	if r.isOk {
		return Result[T, F]{
			value:     r.value,
			isOk:      true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return f(r.err)
}

// Map transforms the Ok payload; Err passes through untouched.
func Map[In, Out, E any](r Result[In, E], f func(v In) Out) Result[Out, E] {
	if r.isOk {
		return Ok[Out, E](f(r.value))
	}
	return errFrom[In, Out](r)
}

// MapErr transforms the Err payload; Ok passes through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(e E) F) Result[T, F] {
	if r.isOk {
		return Result[T, F]{
			value:     r.value,
			isOk:      true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Err[T, F](f(r.err))
}

// Merge unwraps whichever payload is present. It is restricted to Results
// whose success and failure payloads share one type; Results with differing
// sides must be brought to a common type with Map/MapErr first.
func Merge[T any](r Result[T, T]) T {
	if r.isOk {
		return r.value
	}
	return r.err
}

// Matcher holds one handler per variant. Both are required.
type Matcher[T, E, Out any] struct {
	Ok  func(v T) Out
	Err func(e E) Out
}

// Match dispatches exhaustively on the variant. A nil handler is a caller
// contract violation and panics.
func Match[T, E, Out any](r Result[T, E], h Matcher[T, E, Out]) Out {
	if h.Ok == nil || h.Err == nil {
		panic("result: Match requires both Ok and Err handlers")
	}

	if r.isOk {
		return h.Ok(r.value)
	}
	return h.Err(r.err)
}

// Equal reports whether both values hold the same variant with an equal
// payload. Traceability metadata is ignored.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.isOk != b.isOk {
		return false
	}
	if a.isOk {
		return a.value == b.value
	}
	return a.err == b.err
}
