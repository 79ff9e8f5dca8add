// Package flow composes Either values with push streams (receive-only
// channels, see package stream).
//
// Two shapes are supported:
// - Either[L, <-chan R]: MatchObservable
// - <-chan Either[L, R]: MatchEach, Map, Lefts, Rights
//
// Output order always equals input order. Every operator also returns a
// completion future. Null results and Bottom inputs met while forwarding
// close the output and are raised again when that future is awaited, so
// stream.Drain is the usual way to consume an operator.
package flow
