package either

import "errors"

var (
	ErrBottom    = errors.New("either: value is bottom")
	ErrNotLeft   = errors.New("either: value is not left")
	ErrNotRight  = errors.New("either: value is not right")
	ErrNullValue = errors.New("either: value is null")
)

// IsProgrammerError reports whether err is one of the fail-fast errors raised
// on misuse rather than a Left carried as data.
func IsProgrammerError(err error) bool {
	return errors.Is(err, ErrBottom) || errors.Is(err, ErrNotLeft) ||
		errors.Is(err, ErrNotRight) || errors.Is(err, ErrNullValue)
}
