package stream

import (
	"context"

	"github.com/ib-77/either3/pkg/future"
)

// Select maps every element of in through fn. A single goroutine forwards the
// elements, so order and count are kept. The output completes when in does
// or ctx is done.
//
// The returned future resolves once the output is closed. A panic raised by
// fn closes the output early and is raised again by done.Await.
func Select[In, Out any](ctx context.Context, in <-chan In,
	fn func(In) Out) (_ <-chan Out, done *future.Future[struct{}]) {

	return Filter(ctx, in, func(v In) (Out, bool) {
		return fn(v), false
	})
}

// Filter maps every element of in through fn and drops those for which fn
// reports skip. It completes like Select.
func Filter[In, Out any](ctx context.Context, in <-chan In,
	fn func(In) (dst Out, skip bool)) (_ <-chan Out, done *future.Future[struct{}]) {

	out := newOut[Out](ctx)

	// the forwarder must run even on a done ctx so that out is always closed
	done = future.Go(context.WithoutCancel(ctx), func(context.Context) (struct{}, error) {
		defer close(out)
		forward(ctx, in, out, fn)
		return struct{}{}, nil
	})

	return out, done
}

func forward[In, Out any](ctx context.Context, in <-chan In, out chan<- Out,
	fn func(In) (Out, bool)) {

	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-in:
			if !ok {
				return
			}

			dst, skip := fn(v)
			if skip {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- dst:
			}
		}
	}
}
