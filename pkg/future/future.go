package future

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Future is a single value that becomes available later. It is resolved
// exactly once, with a value, an error or a captured panic.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     T
	err       error
	panicked  any
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go runs fn in its own goroutine and resolves the future with its result.
// A panic in fn is captured and raised again in every Await caller.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.panicked = r
			}
		}()

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Completed returns a future already resolved with v.
func Completed[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.value = v
	close(f.done)
	return f
}

// Failed returns a future already resolved with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.err = err
	close(f.done)
	return f
}

// Await suspends until the future resolves or ctx is done. The producer's
// error is returned as is; a done ctx returns ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result()
	default:
	}

	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) result() (T, error) {
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.value, f.err
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) IsResolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt is when the future was created, in UTC.
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Future[T]) String() string {
	if !f.IsResolved() {
		return fmt.Sprintf("Future(%s, pending)", f.id)
	}
	if f.err != nil {
		return fmt.Sprintf("Future(%s, failed: %v)", f.id, f.err)
	}
	return fmt.Sprintf("Future(%s, %v)", f.id, f.value)
}

// Then chains fn on the resolved value of f. An error from f is passed on
// without calling fn.
func Then[T, U any](ctx context.Context, f *Future[T], fn func(ctx context.Context, v T) (U, error)) *Future[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(ctx, v)
	})
}
