package class

// Number is satisfied by Go's integer and floating point kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Semigroup combines two values associatively.
type Semigroup[A any] interface {
	Append(x, y A) A
}

type Add[A any] interface {
	Plus(x, y A) A
}

type Difference[A any] interface {
	Subtract(x, y A) A
}

type Product[A any] interface {
	Multiply(x, y A) A
}

type Divide[A any] interface {
	Divide(x, y A) A
}

// Num is the arithmetic instance for any Number. As a Semigroup it adds.
// Integer division by zero panics as the built-in operator does.
type Num[N Number] struct{}

func (Num[N]) Append(x, y N) N   { return x + y }
func (Num[N]) Plus(x, y N) N     { return x + y }
func (Num[N]) Subtract(x, y N) N { return x - y }
func (Num[N]) Multiply(x, y N) N { return x * y }
func (Num[N]) Divide(x, y N) N   { return x / y }

// Concat is the string Semigroup.
type Concat struct{}

func (Concat) Append(x, y string) string { return x + y }

// Slice is the Semigroup that concatenates slices into a fresh backing array.
type Slice[T any] struct{}

func (Slice[T]) Append(x, y []T) []T {
	out := make([]T, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// SemigroupFunc adapts a plain function to Semigroup.
type SemigroupFunc[A any] func(x, y A) A

func (f SemigroupFunc[A]) Append(x, y A) A { return f(x, y) }

type AddFunc[A any] func(x, y A) A

func (f AddFunc[A]) Plus(x, y A) A { return f(x, y) }

type DifferenceFunc[A any] func(x, y A) A

func (f DifferenceFunc[A]) Subtract(x, y A) A { return f(x, y) }

type ProductFunc[A any] func(x, y A) A

func (f ProductFunc[A]) Multiply(x, y A) A { return f(x, y) }

type DivideFunc[A any] func(x, y A) A

func (f DivideFunc[A]) Divide(x, y A) A { return f(x, y) }
