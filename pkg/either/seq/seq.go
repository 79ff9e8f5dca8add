package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/either3/pkg/either"
)

// Lefts yields the payload of every Left in values, in order.
func Lefts[L, R any](values iter.Seq[either.Either[L, R]]) iter.Seq[L] {
	return func(yield func(L) bool) {
		for e := range values {
			if e.IsLeft() && !yield(e.LeftValue()) {
				return
			}
		}
	}
}

// Rights yields the payload of every Right in values, in order.
func Rights[L, R any](values iter.Seq[either.Either[L, R]]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for e := range values {
			if e.IsRight() && !yield(e.RightValue()) {
				return
			}
		}
	}
}

// Partition splits values into its Lefts and Rights. Both sequences are lazy
// and each one walks values on its own; Bottom elements appear in neither.
func Partition[L, R any](values iter.Seq[either.Either[L, R]]) (iter.Seq[L], iter.Seq[R]) {
	return Lefts(values), Rights(values)
}

func LeftsOf[L, R any](values []either.Either[L, R]) []L {
	return slices.Collect(Lefts(slices.Values(values)))
}

func RightsOf[L, R any](values []either.Either[L, R]) []R {
	return slices.Collect(Rights(slices.Values(values)))
}

func PartitionOf[L, R any](values []either.Either[L, R]) ([]L, []R) {
	return LeftsOf(values), RightsOf(values)
}

// Sequence collects every Right payload. The first element that is not Right
// is returned instead, recast.
func Sequence[L, R any](values []either.Either[L, R]) either.Either[L, []R] {
	out := make([]R, 0, len(values))
	for _, e := range values {
		if !e.IsRight() {
			return either.Recast[L, R, []R](e)
		}
		out = append(out, e.RightValue())
	}
	return either.Right[L](out)
}
