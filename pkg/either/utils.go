package either

import (
	"fmt"
	"reflect"
)

// IsNil reports whether v is a nil interface or a nil pointer, map, channel
// or func value. Nil slices are not null: they are empty slices.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// CheckNotNull panics with ErrNullValue if v is null.
func CheckNotNull[T any](v T) {
	if IsNil(any(v)) {
		panic(fmt.Errorf("%w: %T", ErrNullValue, v))
	}
}
