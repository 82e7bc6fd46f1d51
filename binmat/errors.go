// SPDX-License-Identifier: MIT
// Package binmat: sentinel error set.
// Every panic raised on a precondition violation carries an error that wraps
// one of these sentinels; every returned error wraps one as well.

package binmat

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a row, column, linear or bitpack index outside bounds.
	ErrOutOfRange = errors.New("binmat: index out of range")

	// ErrDimensionMismatch indicates operands with incompatible shapes.
	ErrDimensionMismatch = errors.New("binmat: dimension mismatch")

	// ErrBadShape indicates a negative extent or a block exceeding its source.
	ErrBadShape = errors.New("binmat: invalid shape")

	// ErrFixedShape indicates an attempt to change a fixed extent of a Matrix.
	ErrFixedShape = errors.New("binmat: fixed dimension cannot change")

	// ErrNotVector indicates a vector-only operation applied to a non-vector.
	ErrNotVector = errors.New("binmat: operation requires a column vector")

	// ErrReadOnly indicates a write through a view whose source is not writable.
	ErrReadOnly = errors.New("binmat: expression is not writable")

	// ErrTooLarge indicates a mask too large for the requested interop format.
	ErrTooLarge = errors.New("binmat: mask too large")

	// ErrNilInput indicates a nil source passed to a constructor.
	ErrNilInput = errors.New("binmat: nil input")
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxClear   = "Clear"
	ctxBitpack = "Bitpack"
	ctxResize  = "Resize"
	ctxAssign  = "Assign"
	ctxIndex   = "Index"
	ctxEqual   = "Equal"
	ctxNew     = "New"
	ctxRow     = "Row"
	ctxCol     = "Col"
)

// panicf aborts on a violated precondition. The panic value is an error that
// wraps err, prefixed with the node and method tags.
func panicf(node, method string, err error, format string, args ...any) {
	panic(fmt.Errorf("%s.%s%s: %w", node, method, fmt.Sprintf(format, args...), err))
}

// checkCell panics with ErrOutOfRange unless (i,j) lies in a rows×cols region.
func checkCell(node, method string, i, j, rows, cols int) {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panicf(node, method, ErrOutOfRange, "(%d,%d) outside %dx%d", i, j, rows, cols)
	}
}

// checkBitpack panics with ErrOutOfRange unless 0 ≤ k < n.
func checkBitpack(node string, k, n int) {
	if k < 0 || k >= n {
		panicf(node, ctxBitpack, ErrOutOfRange, "(%d) outside [0,%d)", k, n)
	}
}
