package solo

import (
	"iter"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/class"
)

func lift[L, A any](lhs, rhs either.Either[L, A], op func(x, y A) A) either.Either[L, A] {
	if !lhs.IsRight() {
		return lhs
	}
	if !rhs.IsRight() {
		return rhs
	}
	return either.Right[L](op(lhs.RightValue(), rhs.RightValue()))
}

// Append combines two Right payloads with sg. The first non-Right operand,
// lhs first, is returned as is.
func Append[L, A any](lhs, rhs either.Either[L, A], sg class.Semigroup[A]) either.Either[L, A] {
	return lift(lhs, rhs, sg.Append)
}

func Add[L, A any](lhs, rhs either.Either[L, A], add class.Add[A]) either.Either[L, A] {
	return lift(lhs, rhs, add.Plus)
}

func Difference[L, A any](lhs, rhs either.Either[L, A], diff class.Difference[A]) either.Either[L, A] {
	return lift(lhs, rhs, diff.Subtract)
}

func Product[L, A any](lhs, rhs either.Either[L, A], prod class.Product[A]) either.Either[L, A] {
	return lift(lhs, rhs, prod.Multiply)
}

func Divide[L, A any](lhs, rhs either.Either[L, A], div class.Divide[A]) either.Either[L, A] {
	return lift(lhs, rhs, div.Divide)
}

// Apply calls the function held by fn with the payload of a.
func Apply[L, A, B any](fn either.Either[L, func(A) B], a either.Either[L, A]) either.Either[L, B] {
	if !fn.IsRight() {
		return either.Recast[L, func(A) B, B](fn)
	}
	if !a.IsRight() {
		return either.Recast[L, A, B](a)
	}
	return either.Right[L](fn.RightValue()(a.RightValue()))
}

func Apply2[L, A, B, C any](fn either.Either[L, func(A, B) C],
	a either.Either[L, A], b either.Either[L, B]) either.Either[L, C] {

	return Apply(Apply2Partial(fn, a), b)
}

// Apply2Partial supplies the first argument only and returns the remaining
// one-argument function.
func Apply2Partial[L, A, B, C any](fn either.Either[L, func(A, B) C],
	a either.Either[L, A]) either.Either[L, func(B) C] {

	if !fn.IsRight() {
		return either.Recast[L, func(A, B) C, func(B) C](fn)
	}
	if !a.IsRight() {
		return either.Recast[L, A, func(B) C](a)
	}
	f, x := fn.RightValue(), a.RightValue()
	return either.Right[L](func(y B) C { return f(x, y) })
}

func ApplyCurried[L, A, B, C any](fn either.Either[L, func(A) func(B) C],
	a either.Either[L, A], b either.Either[L, B]) either.Either[L, C] {

	return Apply(ApplyCurriedPartial(fn, a), b)
}

func ApplyCurriedPartial[L, A, B, C any](fn either.Either[L, func(A) func(B) C],
	a either.Either[L, A]) either.Either[L, func(B) C] {

	return Apply(fn, a)
}

// Action keeps only the state of lhs: a Right lhs yields rhs, anything else is
// recast to rhs's type.
func Action[L, A, B any](lhs either.Either[L, A], rhs either.Either[L, B]) either.Either[L, B] {
	if !lhs.IsRight() {
		return either.Recast[L, A, B](lhs)
	}
	return rhs
}

// ActionF is Action with a lazily built right operand; rhs is not called when
// lhs short-circuits.
func ActionF[L, A, B any](lhs either.Either[L, A], rhs func() either.Either[L, B]) either.Either[L, B] {
	if !lhs.IsRight() {
		return either.Recast[L, A, B](lhs)
	}
	return rhs()
}

// Sum is the Right payload, or zero for Left and Bottom.
func Sum[L any, N class.Number](e either.Either[L, N]) N {
	if e.IsRight() {
		return e.RightValue()
	}
	return 0
}

func SumAll[L any, N class.Number](values iter.Seq[either.Either[L, N]]) N {
	var total N
	for e := range values {
		total += Sum(e)
	}
	return total
}

// ParMap2 partially applies f to the Right payload.
func ParMap2[L, A, B, C any](e either.Either[L, A], f func(A, B) C) either.Either[L, func(B) C] {
	return either.Map(e, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
}

func ParMap3[L, A, B, C, D any](e either.Either[L, A], f func(A, B, C) D) either.Either[L, func(B) func(C) D] {
	return either.Map(e, func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	})
}

// SelectMany binds the FIRST element of source only and projects it with the
// bound Right payload. The rest of source is never pulled. An empty source
// yields Bottom.
//
// This is a one-shot adapter for query-style composition, not a bind over
// the whole sequence; callers rely on that.
func SelectMany[L, T, U, V any](source iter.Seq[T],
	bind func(T) either.Either[L, U],
	project func(T, U) V) either.Either[L, V] {

	next, stop := iter.Pull(source)
	defer stop()

	t, ok := next()
	if !ok {
		return either.Bottom[L, V]()
	}
	u := bind(t)
	if !u.IsRight() {
		return either.Recast[L, U, V](u)
	}
	return either.Right[L](project(t, u.RightValue()))
}
