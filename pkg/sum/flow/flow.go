package flow

import (
	"context"
	"sync"

	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/core"
	"github.com/ib-77/sum3/pkg/sum/valid"
)

// Check produces the Validation for one independent rule or field.
type Check[T, E any] func(ctx context.Context) valid.Validation[T, E]

// Gather runs the checks concurrently and combines their results with a
// left fold of Concat in declaration order, so the outcome is identical to
// running the checks sequentially. Checks skipped because of cancellation
// contribute an Invalid carrying the context error.
func Gather[T any](ctx context.Context, checks ...Check[T, error]) valid.Validation[T, error] {
	return GatherWith(ctx, func(err error) error { return err }, checks...)
}

// GatherWith is Gather for an arbitrary failure payload type: onCancel maps
// the context error of a skipped check to an E.
func GatherWith[T, E any](ctx context.Context, onCancel func(err error) E,
	checks ...Check[T, E]) valid.Validation[T, E] {

	if len(checks) == 0 {
		return valid.Collect[T, E](nil)
	}

	results, filled := runAll(ctx, checks)

	for i := range results {
		if !filled[i] {
			results[i] = valid.Invalid[T](onCancel(cancelCause(ctx)))
		}
	}

	return valid.Collect(results)
}

func runAll[T, E any](ctx context.Context, checks []Check[T, E]) ([]valid.Validation[T, E], []bool) {
	inputCh := core.ToChanIndexed(ctx, checks)
	out := make(chan core.Indexed[valid.Validation[T, E]])

	lines := core.GetWorkerMaxCount(ctx, len(checks))
	if lines < 1 {
		lines = 1
	}

	wg := &sync.WaitGroup{}
	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out,
			func(ctx context.Context, check Check[T, E]) valid.Validation[T, E] {
				return check(ctx)
			}, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return core.GatherIndexed(len(checks), out)
}

func cancelCause(ctx context.Context) error {
	err := ctx.Err()
	if !sum.IsCancellationError(err) {
		err = context.Canceled
	}
	return err
}
