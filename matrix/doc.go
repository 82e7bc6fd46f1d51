// Package matrix provides the numeric dense matrix that mask code reads from
// and writes to.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - MatrixView, a read-only no-copy window onto a Dense (shared storage).
//   - Do/Apply visitors with a fixed row-major order.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateFinite) used by callers
//     that combine a Dense with a binary mask.
//
// binmat.FromNumeric turns any Matrix into a mask (nonzero ⇒ true) and
// binmat.Select zeroes the entries of a Dense that a mask leaves out.
package matrix
