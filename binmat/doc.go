// SPDX-License-Identifier: MIT

// Package binmat is a compact, bit-packed boolean matrix engine.
//
// What:
//
//   - Matrix stores an r×c boolean matrix in 64-bit words ("bitpacks"),
//     row-major, least significant bit first: cell (i,j) is bit (i*c+j)%64 of
//     word (i*c+j)/64.
//   - Every matrix, view and operator result satisfies Expr, which answers
//     both per-cell (At) and per-word (Bitpack) queries.
//   - Operators (Not, And, Or, Xor) and views (Block, Row, Col, Repeat,
//     Reshaped, VectorView) are lazy: nothing is materialized until an
//     expression is assigned into a Matrix (FromExpr, Assign).
//   - Reductions (All, Any, Count) and comparisons (Equal, NotEqual) walk the
//     words of an expression directly, masking the partial trailing word.
//
// Why:
//
//   - Boundary markers, node/edge/face selections and sparsity patterns are
//     large boolean masks combined with bitwise logic; packing them 64 per word
//     makes those combinations and reductions word-at-a-time.
//
// Ownership:
//
//   - *Matrix is the only owning, mutable, resizable node. Lazy nodes borrow
//     the *Matrix they were built from (nested by reference) and are
//     themselves copied into their parents (nested by value).
//   - Resizing a Matrix invalidates every view built on it; views do not
//     revalidate their bounds.
//   - Nothing in this package is safe for concurrent mutation.
//
// Errors:
//
//   - Precondition violations (index out of range, shape mismatch, resizing a
//     fixed axis, out-of-bounds blocks, writes through read-only views) panic
//     with an error wrapping one of the package sentinels, so a recover()
//     site can still use errors.Is.
//   - Failures that depend on external data (numeric sources, bitmap interop)
//     are returned as errors.
//
// Complexity:
//
//   - At/Set/Clear: O(1). Bitwise operators: O(1) per word.
//   - Block/Repeat Bitpack: O(64) per word (gather), O(1) for contiguous blocks.
//   - All/Any: O(size/64) with early exit. Count, Which: O(size).
package binmat
