package core

import (
	"context"
)

// Indexed pairs a value with its position in the originating slice so that
// concurrently produced outputs can be put back in input order.
type Indexed[T any] struct {
	Index int
	Value T
}

func ToChanIndexed[T any](ctx context.Context, values []T) <-chan Indexed[T] {
	in := make(chan Indexed[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for i, v := range values {
			select {
			case in <- Indexed[T]{Index: i, Value: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// GatherIndexed drains out until it is closed, placing each value at its
// index. The second slice marks which slots were actually filled; slots left
// empty by cancellation stay false.
func GatherIndexed[T any](n int, out <-chan Indexed[T]) ([]T, []bool) {
	values := make([]T, n)
	filled := make([]bool, n)

	for v := range out {
		if v.Index < 0 || v.Index >= n {
			continue
		}
		values[v.Index] = v.Value
		filled[v.Index] = true
	}

	return values, filled
}
