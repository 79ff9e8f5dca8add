package flow

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
	"github.com/ib-77/either3/pkg/stream"
)

// MatchObservable maps every element of a Right stream through onRight, or
// returns a completed single-element stream holding onLeft's result for a
// Left. Each result is checked for null and matching Bottom panics with
// either.ErrBottom.
//
// A null element closes the output early; the ErrNullValue panic is raised
// again by done.Await. A null Left result panics in the caller.
func MatchObservable[L, R, T any](ctx context.Context, e either.Either[L, <-chan R],
	onLeft func(l L) T, onRight func(r R) T) (_ <-chan T, done *future.Future[struct{}]) {

	switch {
	case e.IsRight():
		return stream.Select(ctx, e.RightValue(), func(r R) T {
			res := onRight(r)
			either.CheckNotNull(res)
			return res
		})
	case e.IsLeft():
		res := onLeft(e.LeftValue())
		either.CheckNotNull(res)
		return stream.Return(res), future.Completed(struct{}{})
	default:
		panic(either.ErrBottom)
	}
}

// MatchEach matches every Either emitted by in, keeping order and count.
// A Bottom element or a null result stops the stream and is raised by
// done.Await.
func MatchEach[L, R, T any](ctx context.Context, in <-chan either.Either[L, R],
	onLeft func(l L) T, onRight func(r R) T) (_ <-chan T, done *future.Future[struct{}]) {

	return stream.Select(ctx, in, func(e either.Either[L, R]) T {
		return either.Match(e, onLeft, onRight)
	})
}

// Map applies f to every Right emitted by in. Left and Bottom elements are
// recast and passed on in place.
func Map[L, R, U any](ctx context.Context, in <-chan either.Either[L, R],
	f func(r R) U) (_ <-chan either.Either[L, U], done *future.Future[struct{}]) {

	return stream.Select(ctx, in, func(e either.Either[L, R]) either.Either[L, U] {
		return either.Map(e, f)
	})
}

// Lefts streams the Left payloads of in and drops everything else.
func Lefts[L, R any](ctx context.Context, in <-chan either.Either[L, R]) (_ <-chan L, done *future.Future[struct{}]) {
	return stream.Filter(ctx, in, leftOf[L, R])
}

// Rights streams the Right payloads of in and drops everything else.
func Rights[L, R any](ctx context.Context, in <-chan either.Either[L, R]) (_ <-chan R, done *future.Future[struct{}]) {
	return stream.Filter(ctx, in, rightOf[L, R])
}

func leftOf[L, R any](e either.Either[L, R]) (_ L, skip bool) {
	if e.IsLeft() {
		return e.LeftValue(), false
	}
	var zero L
	return zero, true
}

func rightOf[L, R any](e either.Either[L, R]) (_ R, skip bool) {
	if e.IsRight() {
		return e.RightValue(), false
	}
	var zero R
	return zero, true
}
