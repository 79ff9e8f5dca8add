package either

import "fmt"

// State is the branch an Either currently holds.
type State uint8

const (
	StateBottom State = iota
	StateLeft
	StateRight
)

func (s State) String() string {
	switch s {
	case StateLeft:
		return "Left"
	case StateRight:
		return "Right"
	default:
		return "Bottom"
	}
}

// Either holds exactly one of a Left value, a Right value or nothing at all
// (Bottom). The zero value is Bottom.
type Either[L, R any] struct {
	left  L
	right R
	state State
}

// Left builds a Left branch. It panics with ErrNullValue on a nil payload.
func Left[L, R any](l L) Either[L, R] {
	CheckNotNull(l)
	return Either[L, R]{left: l, state: StateLeft}
}

// Right builds a Right branch. It panics with ErrNullValue on a nil payload.
func Right[L, R any](r R) Either[L, R] {
	CheckNotNull(r)
	return Either[L, R]{right: r, state: StateRight}
}

// Bottom returns the uninitialised state. It is the same as Either[L, R]{}.
func Bottom[L, R any]() Either[L, R] {
	return Either[L, R]{}
}

func (e Either[L, R]) State() State {
	return e.state
}

func (e Either[L, R]) IsLeft() bool {
	return e.state == StateLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.state == StateRight
}

func (e Either[L, R]) IsBottom() bool {
	return e.state == StateBottom
}

// LeftValue returns the Left payload. It panics on Right or Bottom.
func (e Either[L, R]) LeftValue() L {
	switch e.state {
	case StateLeft:
		return e.left
	case StateRight:
		panic(ErrNotLeft)
	default:
		panic(ErrBottom)
	}
}

// RightValue returns the Right payload. It panics on Left or Bottom.
func (e Either[L, R]) RightValue() R {
	switch e.state {
	case StateRight:
		return e.right
	case StateLeft:
		panic(ErrNotRight)
	default:
		panic(ErrBottom)
	}
}

func (e Either[L, R]) LeftOr(def L) L {
	if e.state == StateLeft {
		return e.left
	}
	return def
}

func (e Either[L, R]) RightOr(def R) R {
	if e.state == StateRight {
		return e.right
	}
	return def
}

// Count is 1 for Right and 0 otherwise.
func (e Either[L, R]) Count() int {
	if e.state == StateRight {
		return 1
	}
	return 0
}

// Exists is false for Left and Bottom, otherwise pred applied to the Right payload.
func (e Either[L, R]) Exists(pred func(R) bool) bool {
	if e.state != StateRight {
		return false
	}
	return pred(e.right)
}

// ForAll is true for Left and Bottom, otherwise pred applied to the Right payload.
func (e Either[L, R]) ForAll(pred func(R) bool) bool {
	if e.state != StateRight {
		return true
	}
	return pred(e.right)
}

// Iter calls action with the Right payload. Left and Bottom are no-ops.
func (e Either[L, R]) Iter(action func(R)) {
	if e.state == StateRight {
		action(e.right)
	}
}

// IfLeft calls action with the Left payload. Right and Bottom are no-ops.
func (e Either[L, R]) IfLeft(action func(L)) {
	if e.state == StateLeft {
		action(e.left)
	}
}

// Swap exchanges the branches. Bottom stays Bottom.
func (e Either[L, R]) Swap() Either[R, L] {
	switch e.state {
	case StateLeft:
		return Either[R, L]{right: e.left, state: StateRight}
	case StateRight:
		return Either[R, L]{left: e.right, state: StateLeft}
	default:
		return Either[R, L]{}
	}
}

func (e Either[L, R]) String() string {
	switch e.state {
	case StateLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case StateRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Bottom"
	}
}
