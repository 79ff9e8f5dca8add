package stream

import (
	"context"

	"github.com/ib-77/either3/pkg/future"
)

// FromArgs emits values in order and completes. It stops early when ctx is done.
func FromArgs[T any](ctx context.Context, values ...T) <-chan T {
	out := newOut[T](ctx)

	go func() {
		defer close(out)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func FromSlice[T any](ctx context.Context, values []T) <-chan T {
	return FromArgs(ctx, values...)
}

// Return is the completed single-element stream holding v.
func Return[T any](v T) <-chan T {
	out := make(chan T, 1)
	out <- v
	close(out)
	return out
}

// Empty is a stream that completes without emitting.
func Empty[T any]() <-chan T {
	out := make(chan T)
	close(out)
	return out
}

// First returns the first element of in, or defaultV if in completes empty or
// ctx is done first.
func First[T any](ctx context.Context, in <-chan T, defaultV T) T {
	select {
	case v, ok := <-in:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// Collect drains in until it completes or ctx is done.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Drain collects in and then waits for done, the completion of the operation
// that produced in. A panic captured by that operation is raised here.
func Drain[T any](ctx context.Context, in <-chan T, done *future.Future[struct{}]) ([]T, error) {
	res := Collect(ctx, in)
	_, err := done.Await(ctx)
	return res, err
}
