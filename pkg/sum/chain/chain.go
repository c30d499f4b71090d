package chain

import (
	"context"

	"github.com/ib-77/sum3/pkg/sum/result"
)

// Chain wraps a result.Result with context to enable fluent chaining. The
// failure side is fixed to error, the common case for pipeline code; use the
// result package directly for other failure payload types.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T, error]
}

// Start creates a new chain from a result.Result
func Start[T any](ctx context.Context, res result.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: res,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: result.Ok[T, error](value),
	}
}

// Result returns the underlying result.Result
func (c *Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// Then chains a function that returns result.Result[U, error]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) result.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Chain(c.res, func(v T) result.Result[U, error] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Chain(c.res, func(v T) result.Result[U, error] {
			u, err := tryOnOk(c.ctx, v)
			if err != nil {
				return result.Err[U, error](err)
			}
			return result.Ok[U, error](u)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// OrElse tries an alternative on failure without touching a successful result
func (c *Chain[T]) OrElse(onErr func(context.Context, error) result.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: result.OrElse(c.res, func(err error) result.Result[T, error] {
			return onErr(c.ctx, err)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	if c.res.IsOk() {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// GetOrElse collapses the chain into the successful value or a default
func (c *Chain[T]) GetOrElse(def T) T {
	return c.res.GetOrElse(def)
}

// Finally collapses the chain into a final result via result.Match
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	return result.Match(c.res, result.Matcher[T, error, U]{
		Ok: func(v T) U {
			return onOk(c.ctx, v)
		},
		Err: func(err error) U {
			return onErr(c.ctx, err)
		},
	})
}
