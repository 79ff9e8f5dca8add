// Package class holds the single-operation capabilities (Semigroup, Add,
// Difference, Product, Divide) that the lifting combinators in solo take as
// arguments, together with stock instances for numbers, strings and slices.
package class
