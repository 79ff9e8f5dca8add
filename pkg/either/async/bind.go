package async

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
)

// BindAsync feeds the Right payload of e to f and passes the Either it
// resolves to through unchanged. On Left or Bottom f is not called.
func BindAsync[L, R, U any](ctx context.Context, e either.Either[L, R],
	f func(ctx context.Context, r R) *future.Future[either.Either[L, U]]) *future.Future[either.Either[L, U]] {

	if !e.IsRight() {
		return future.Completed(either.Recast[L, R, U](e))
	}

	r := e.RightValue()
	return future.Go(ctx, func(ctx context.Context) (either.Either[L, U], error) {
		return f(ctx, r).Await(ctx)
	})
}

func BindFutureAsync[L, R, U any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	f func(ctx context.Context, r R) *future.Future[either.Either[L, U]]) *future.Future[either.Either[L, U]] {

	return then(ctx, fe, func(ctx context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return BindAsync(ctx, e, f).Await(ctx)
	})
}

func BindFuture[L, R, U any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	f func(r R) either.Either[L, U]) *future.Future[either.Either[L, U]] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return either.Bind(e, f), nil
	})
}

func BindPending[L, R, U any](ctx context.Context, e either.Either[L, *future.Future[R]],
	f func(r R) either.Either[L, U]) *future.Future[either.Either[L, U]] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return either.Bind(e, f), nil
	})
}

func BindPendingAsync[L, R, U any](ctx context.Context, e either.Either[L, *future.Future[R]],
	f func(ctx context.Context, r R) *future.Future[either.Either[L, U]]) *future.Future[either.Either[L, U]] {

	return pending(ctx, e, func(ctx context.Context, e either.Either[L, R]) (either.Either[L, U], error) {
		return BindAsync(ctx, e, f).Await(ctx)
	})
}
