// Package future provides Future[T], a single-value asynchronous handle.
//
// Go starts the producing function on its own goroutine; Completed and Failed
// wrap values that are already known. Await suspends the caller until the
// value is there or its context is done. Producer errors and panics are never
// swallowed: errors come back from Await and panics are raised again in the
// awaiting goroutine.
package future
