package either

// Recast moves a non-Right Either to a new Right type. Left keeps its payload,
// Bottom stays Bottom. It panics with ErrNotLeft when e is Right, since a Right
// payload cannot be carried over.
func Recast[L, R, U any](e Either[L, R]) Either[L, U] {
	switch e.state {
	case StateLeft:
		return Either[L, U]{left: e.left, state: StateLeft}
	case StateBottom:
		return Either[L, U]{}
	default:
		panic(ErrNotLeft)
	}
}

// Map applies f to the Right payload.
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.state == StateRight {
		return Right[L](f(e.right))
	}
	return Recast[L, R, U](e)
}

// MapLeft applies f to the Left payload.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	switch e.state {
	case StateLeft:
		return Left[M, R](f(e.left))
	case StateRight:
		return Either[M, R]{right: e.right, state: StateRight}
	default:
		return Either[M, R]{}
	}
}

// BiMap maps whichever branch is populated.
func BiMap[L, R, M, U any](e Either[L, R], onLeft func(L) M, onRight func(R) U) Either[M, U] {
	switch e.state {
	case StateLeft:
		return Left[M, U](onLeft(e.left))
	case StateRight:
		return Right[M](onRight(e.right))
	default:
		return Either[M, U]{}
	}
}

// Bind feeds the Right payload to f and returns its Either unchanged.
func Bind[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e.state == StateRight {
		return f(e.right)
	}
	return Recast[L, R, U](e)
}

// Fold applies f once to the seed and the Right payload. Left and Bottom
// return the seed unchanged.
func Fold[L, R, S any](e Either[L, R], seed S, f func(S, R) S) S {
	if e.state == StateRight {
		return f(seed, e.right)
	}
	return seed
}

// Match reduces e to a value. A nil result panics with ErrNullValue and
// matching Bottom panics with ErrBottom.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	var res T
	switch e.state {
	case StateLeft:
		res = onLeft(e.left)
	case StateRight:
		res = onRight(e.right)
	default:
		panic(ErrBottom)
	}
	CheckNotNull(res)
	return res
}

// FromError turns a (value, error) pair into an Either with the error on the Left.
func FromError[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](r)
}
