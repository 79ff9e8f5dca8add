// Package solo contains synchronous combinators over one or a few Either
// values. Every function short-circuits on the first operand that is not
// Right, evaluating operands left to right.
//
// Highlights:
// - Append/Add/Difference/Product/Divide: lift a class capability over Right payloads
// - Apply/Apply2/ApplyCurried (+Partial): applicative application
// - Action/ActionF: sequence two values, keeping the second
// - Sum/SumAll: numeric aggregation, Left and Bottom count as zero
// - ParMap2/ParMap3: partially apply a multi-argument function
// - SelectMany: one-shot adapter binding the first element of a sequence
package solo
