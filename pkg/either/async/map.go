package async

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
)

// MapAsync runs the asynchronous f on the Right payload of e. On Left or Bottom
// f is not called and the recast value is returned as a completed future.
func MapAsync[L, R, U any](ctx context.Context, e either.Either[L, R],
	f func(ctx context.Context, r R) *future.Future[U]) *future.Future[either.Either[L, U]] {

	if !e.IsRight() {
		return future.Completed(either.Recast[L, R, U](e))
	}

	r := e.RightValue()
	return future.Go(ctx, func(ctx context.Context) (either.Either[L, U], error) {
		u, err := f(ctx, r).Await(ctx)
		if err != nil {
			return either.Either[L, U]{}, err
		}
		return either.Right[L](u), nil
	})
}

// MapFutureAsync awaits fe, then behaves as MapAsync.
func MapFutureAsync[L, R, U any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	f func(ctx context.Context, r R) *future.Future[U]) *future.Future[either.Either[L, U]] {

	return then(ctx, fe, func(ctx context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return MapAsync(ctx, e, f).Await(ctx)
	})
}

// MapFuture awaits fe and maps its Right payload with f.
func MapFuture[L, R, U any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	f func(r R) U) *future.Future[either.Either[L, U]] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return either.Map(e, f), nil
	})
}

// MapPending awaits the Right payload of e and maps it with f.
func MapPending[L, R, U any](ctx context.Context, e either.Either[L, *future.Future[R]],
	f func(r R) U) *future.Future[either.Either[L, U]] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return either.Map(e, f), nil
	})
}

func MapPendingAsync[L, R, U any](ctx context.Context, e either.Either[L, *future.Future[R]],
	f func(ctx context.Context, r R) *future.Future[U]) *future.Future[either.Either[L, U]] {

	return pending(ctx, e, func(ctx context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return MapAsync(ctx, e, f).Await(ctx)
	})
}
