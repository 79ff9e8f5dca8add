// Package either contains the Either[L, R] disjoint union and its structural
// operations. An Either is Left (by convention the error or alternate branch),
// Right (the success branch) or Bottom, the zero value that was never
// constructed.
//
// Highlights:
// - Left/Right/Bottom: construct values; nil payloads panic with ErrNullValue
// - IsLeft/IsRight/IsBottom, LeftValue/RightValue: inspect the branch
// - Map/MapLeft/BiMap/Bind: transform, propagating Left and Bottom untouched
// - Fold/Match/Count/Exists/ForAll/Iter: reduce to plain values
// - Recast: move a Left or Bottom to a different Right type
//
// Combinators over several values, sequences, futures and streams live in the
// solo, seq, async and flow sub-packages.
package either
