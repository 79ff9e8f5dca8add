// Package stream contains the push-stream plumbing used by the flow package.
// A stream is a receive-only channel; operations start one forwarding
// goroutine each, keep element order, and close their output when the input
// completes or the context is done.
//
// Operators also return a completion future. A panic in a user function
// closes the output and is raised again by the future's Await (see Drain).
//
// Buffering of every output channel is configured through the context with
// WithBufferSize.
package stream
