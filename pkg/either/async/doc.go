// Package async composes Either values with future.Future.
//
// Two shapes are supported and kept apart by name:
// - *future.Future[Either[L, R]]: the branch itself is not known yet (*Future*, *Async)
// - Either[L, *future.Future[R]]: the branch is known, only the Right payload is pending (*Pending*)
//
// Every combinator returns a future, even when nothing had to be awaited. A
// Left or Bottom that is already known short-circuits: the transformation is
// never called and a completed future is returned without starting a
// goroutine. Errors from awaited futures, including context cancellation,
// come back unchanged from Await on the result.
package async
