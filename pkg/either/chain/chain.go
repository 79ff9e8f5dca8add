package chain

import (
	"context"

	"github.com/ib-77/either3/pkg/either"
)

// Chain wraps an either.Either with context to enable fluent chaining
type Chain[L, R any] struct {
	ctx   context.Context
	value either.Either[L, R]
}

// Start creates a new chain from an either.Either
func Start[L, R any](ctx context.Context, value either.Either[L, R]) *Chain[L, R] {
	return &Chain[L, R]{
		ctx:   ctx,
		value: value,
	}
}

// FromValue creates a new chain from a Right value
func FromValue[L, R any](ctx context.Context, value R) *Chain[L, R] {
	return Start(ctx, either.Right[L](value))
}

// Result returns the underlying either.Either
func (c *Chain[L, R]) Result() either.Either[L, R] {
	return c.value
}

// Then chains a step that returns either.Either[L, U]
func Then[L, R, U any](c *Chain[L, R], onRight func(context.Context, R) either.Either[L, U]) *Chain[L, U] {
	return &Chain[L, U]{
		ctx: c.ctx,
		value: either.Bind(c.value, func(r R) either.Either[L, U] {
			return onRight(c.ctx, r)
		}),
	}
}

// Map chains a pure transformation function
func Map[L, R, U any](c *Chain[L, R], onRight func(context.Context, R) U) *Chain[L, U] {
	return &Chain[L, U]{
		ctx: c.ctx,
		value: either.Map(c.value, func(r R) U {
			return onRight(c.ctx, r)
		}),
	}
}

// Validate turns a Right into a Left holding reason when validate rejects it
func (c *Chain[L, R]) Validate(validate func(context.Context, R) (valid bool, reason L)) *Chain[L, R] {
	return Then(c, func(ctx context.Context, r R) either.Either[L, R] {
		if valid, reason := validate(ctx, r); !valid {
			return either.Left[L, R](reason)
		}
		return either.Right[L](r)
	})
}

// Ensure performs a side effect on Right without changing the value
func (c *Chain[L, R]) Ensure(onRight func(context.Context, R)) *Chain[L, R] {
	c.value.Iter(func(r R) {
		onRight(c.ctx, r)
	})
	return c
}

// Finally collapses the chain into a final value; a Bottom chain panics
func Finally[L, R, T any](c *Chain[L, R], onLeft func(context.Context, L) T, onRight func(context.Context, R) T) T {
	return either.Match(c.value,
		func(l L) T { return onLeft(c.ctx, l) },
		func(r R) T { return onRight(c.ctx, r) })
}
