// Package seq decomposes sequences of Either values. Lefts, Rights and
// Partition are lazy over iter.Seq and keep the source order; the *Of
// variants work on slices.
package seq
