package async

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
)

// Resolve awaits the Right payload of e. A resolved nil payload panics with
// either.ErrNullValue when the result is awaited. Left and Bottom resolve at
// once.
func Resolve[L, R any](ctx context.Context,
	e either.Either[L, *future.Future[R]]) *future.Future[either.Either[L, R]] {

	if !e.IsRight() {
		return future.Completed(either.Recast[L, *future.Future[R], R](e))
	}

	pending := e.RightValue()
	return future.Go(ctx, func(ctx context.Context) (either.Either[L, R], error) {
		r, err := pending.Await(ctx)
		if err != nil {
			return either.Either[L, R]{}, err
		}
		return either.Right[L](r), nil
	})
}

// then applies fn to the Either held by fe once it resolves.
func then[L, R, T any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	fn func(ctx context.Context, e either.Either[L, R]) (T, error)) *future.Future[T] {

	return future.Then(ctx, fe, fn)
}

// pending applies fn to e after its Right payload resolves. Left and Bottom
// are handed to fn straight away, without a goroutine.
func pending[L, R, T any](ctx context.Context, e either.Either[L, *future.Future[R]],
	fn func(ctx context.Context, e either.Either[L, R]) (T, error)) *future.Future[T] {

	if !e.IsRight() {
		res, err := fn(ctx, either.Recast[L, *future.Future[R], R](e))
		if err != nil {
			return future.Failed[T](err)
		}
		return future.Completed(res)
	}
	return then(ctx, Resolve(ctx, e), fn)
}
