package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNum(t *testing.T) {
	t.Parallel()

	n := Num[int]{}
	assert.Equal(t, 7, n.Plus(3, 4))
	assert.Equal(t, 7, n.Append(3, 4))
	assert.Equal(t, -1, n.Subtract(3, 4))
	assert.Equal(t, 12, n.Multiply(3, 4))
	assert.Equal(t, 2, n.Divide(9, 4))

	f := Num[float64]{}
	assert.InDelta(t, 2.25, f.Divide(9, 4), 1e-9)
}

func TestSemigroups(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", Concat{}.Append("a", "b"))

	x := []int{1, 2}
	out := Slice[int]{}.Append(x, []int{3})
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{1, 2}, x)

	larger := SemigroupFunc[int](func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
	assert.Equal(t, 5, larger.Append(5, 2))
}

func TestFuncAdaptors(t *testing.T) {
	t.Parallel()

	var (
		add Add[int]        = AddFunc[int](func(x, y int) int { return x + y })
		sub Difference[int] = DifferenceFunc[int](func(x, y int) int { return x - y })
		mul Product[int]    = ProductFunc[int](func(x, y int) int { return x * y })
		div Divide[int]     = DivideFunc[int](func(x, y int) int { return x / y })
	)
	assert.Equal(t, 5, add.Plus(2, 3))
	assert.Equal(t, -1, sub.Subtract(2, 3))
	assert.Equal(t, 6, mul.Multiply(2, 3))
	assert.Equal(t, 3, div.Divide(6, 2))
}
