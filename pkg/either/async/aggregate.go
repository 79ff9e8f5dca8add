package async

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/class"
	"github.com/ib-77/either3/pkg/either/solo"
	"github.com/ib-77/either3/pkg/future"
)

// IterAsync calls action with the Right payload once fe resolves.
func IterAsync[L, R any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	action func(r R)) *future.Future[struct{}] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (struct{}, error) {
		e.Iter(action)
		return struct{}{}, nil
	})
}

func IterPending[L, R any](ctx context.Context, e either.Either[L, *future.Future[R]],
	action func(r R)) *future.Future[struct{}] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (struct{}, error) {
		e.Iter(action)
		return struct{}{}, nil
	})
}

func CountAsync[L, R any](ctx context.Context, fe *future.Future[either.Either[L, R]]) *future.Future[int] {
	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (int, error) {
		return e.Count(), nil
	})
}

func CountPending[L, R any](ctx context.Context, e either.Either[L, *future.Future[R]]) *future.Future[int] {
	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (int, error) {
		return e.Count(), nil
	})
}

func SumAsync[L any, N class.Number](ctx context.Context, fe *future.Future[either.Either[L, N]]) *future.Future[N] {
	return then(ctx, fe, func(_ context.Context, e either.Either[L, N]) (N, error) {
		return solo.Sum(e), nil
	})
}

func SumPending[L any, N class.Number](ctx context.Context, e either.Either[L, *future.Future[N]]) *future.Future[N] {
	return pending(ctx, e, func(_ context.Context, e either.Either[L, N]) (N, error) {
		return solo.Sum(e), nil
	})
}

func FoldAsync[L, R, S any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	seed S, f func(s S, r R) S) *future.Future[S] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (S, error) {
		return either.Fold(e, seed, f), nil
	})
}

func FoldPending[L, R, S any](ctx context.Context, e either.Either[L, *future.Future[R]],
	seed S, f func(s S, r R) S) *future.Future[S] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (S, error) {
		return either.Fold(e, seed, f), nil
	})
}

// ForAllAsync is true for Left and Bottom without calling pred.
func ForAllAsync[L, R any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	pred func(r R) bool) *future.Future[bool] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (bool, error) {
		return e.ForAll(pred), nil
	})
}

func ForAllPending[L, R any](ctx context.Context, e either.Either[L, *future.Future[R]],
	pred func(r R) bool) *future.Future[bool] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (bool, error) {
		return e.ForAll(pred), nil
	})
}

// ExistsAsync is false for Left and Bottom without calling pred.
func ExistsAsync[L, R any](ctx context.Context, fe *future.Future[either.Either[L, R]],
	pred func(r R) bool) *future.Future[bool] {

	return then(ctx, fe, func(_ context.Context, e either.Either[L, R]) (bool, error) {
		return e.Exists(pred), nil
	})
}

func ExistsPending[L, R any](ctx context.Context, e either.Either[L, *future.Future[R]],
	pred func(r R) bool) *future.Future[bool] {

	return pending(ctx, e, func(_ context.Context, e either.Either[L, R]) (bool, error) {
		return e.Exists(pred), nil
	})
}
