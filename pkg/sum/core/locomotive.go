package core

import (
	"context"
	"sync"
)

// Locomotive is the worker loop driving one line of a fan-out: it reads
// indexed inputs, applies the engine, and emits indexed outputs until the
// input channel closes or the context is cancelled.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan Indexed[In], outCh chan<- Indexed[Out],
	engine func(ctx context.Context, input In) Out, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := Indexed[Out]{Index: in.Index, Value: engine(ctx, in.Value)}

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
			}
		}
	}
}
