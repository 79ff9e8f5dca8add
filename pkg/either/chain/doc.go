// Package chain provides a fluent wrapper around either.Either for building
// synchronous railway-style chains.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a Right value
// - Then: bind the Right value to a step returning a new Either
// - Map: transform the Right value (R -> U)
// - Validate: reject a Right value with a Left reason
// - Ensure: run side effects on Right without changing the value
// - Finally: collapse the chain into a final value via handlers
package chain
