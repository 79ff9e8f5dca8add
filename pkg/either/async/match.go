package async

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
)

// MatchAsync evaluates onLeft at once for a Left, or awaits the Right future
// and applies onRight. A nil result panics with either.ErrNullValue: for Left
// in the caller, for Right in whoever awaits. Matching Bottom panics with
// either.ErrBottom.
func MatchAsync[L, R, T any](ctx context.Context, e either.Either[L, *future.Future[R]],
	onLeft func(l L) T, onRight func(r R) T) *future.Future[T] {

	if e.IsBottom() {
		panic(either.ErrBottom)
	}
	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (T, error) {
		return either.Match(e, onLeft, onRight), nil
	})
}

// MatchFuture awaits fe and matches the Either it holds.
func MatchFuture[L, R, T any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	onLeft func(l L) T, onRight func(r R) T) *future.Future[T] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (T, error) {
		return either.Match(e, onLeft, onRight), nil
	})
}
