package maybe

// Maybe is a two-variant container: Present with a payload or Absent with none.
type Maybe[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{
		present: false,
	}
}

// FromPtr wraps the pointee, mapping a nil pointer to Absent.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Value returns the payload, or T's zero value on Absent.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) GetOrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

// Chain sequences a dependent check; Absent short-circuits and f is not called.
func Chain[In, Out any](m Maybe[In], f func(in In) Maybe[Out]) Maybe[Out] {
	if m.present {
		return f(m.value)
	}
	return Absent[Out]()
}

// Map transforms the payload of Present; Absent passes through untouched.
func Map[In, Out any](m Maybe[In], f func(in In) Out) Maybe[Out] {
	if m.present {
		return Present(f(m.value))
	}
	return Absent[Out]()
}

// Matcher holds one handler per variant. Both are required.
type Matcher[T, Out any] struct {
	Present func(v T) Out
	Absent  func() Out
}

// Match dispatches exhaustively on the variant. A nil handler is a caller
// contract violation and panics.
func Match[T, Out any](m Maybe[T], h Matcher[T, Out]) Out {
	if h.Present == nil || h.Absent == nil {
		panic("maybe: Match requires both Present and Absent handlers")
	}

	if m.present {
		return h.Present(m.value)
	}
	return h.Absent()
}

// Equal reports whether both values hold the same variant and, for Present,
// an equal payload.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}
