// SPDX-License-Identifier: MIT

// Package binmat - lazy bitwise operator nodes.
//
// Each node carries two functions that must agree bit-for-bit: a word-level
// one used by Bitpack (reductions, realization) and a cell-level one used by
// At (single-cell reads). Nodes are immutable values; operands that are
// *Matrix are borrowed, operands that are lazy nodes are copied.

package binmat

import "fmt"

const (
	nodeUnary  = "UnaryOp"
	nodeBinary = "BinaryOp"
)

// UnaryOp applies a bitwise function to one expression.
type UnaryOp struct {
	x    Expr
	word func(BitPack) BitPack
	cell func(bool) bool
}

// NewUnaryOp wraps x with a (word, cell) function pair.
// The caller guarantees that word acts on every bit exactly like cell.
func NewUnaryOp(x Expr, word func(BitPack) BitPack, cell func(bool) bool) UnaryOp {
	if x == nil || word == nil || cell == nil {
		panic(fmt.Errorf("NewUnaryOp: %w", ErrNilInput))
	}

	return UnaryOp{x: x, word: word, cell: cell}
}

// Rows returns the operand's row count.
func (u UnaryOp) Rows() int { return u.x.Rows() }

// Cols returns the operand's column count.
func (u UnaryOp) Cols() int { return u.x.Cols() }

// Bitpacks returns the word count of the operand's shape.
func (u UnaryOp) Bitpacks() int { return bitpacksFor(Size(u)) }

// At applies the cell function to operand cell (i,j).
func (u UnaryOp) At(i, j int) bool {
	checkCell(nodeUnary, ctxAt, i, j, u.Rows(), u.Cols())

	return u.cell(u.x.At(i, j))
}

// Bitpack applies the word function to operand word k.
func (u UnaryOp) Bitpack(k int) BitPack { return u.word(u.x.Bitpack(k)) }

// String renders the evaluated expression.
func (u UnaryOp) String() string { return Format(u) }

// BinaryOp applies a bitwise function to two expressions of identical shape.
type BinaryOp struct {
	lhs, rhs Expr
	word     func(a, b BitPack) BitPack
	cell     func(a, b bool) bool
}

// NewBinaryOp combines lhs and rhs with a (word, cell) function pair.
// Panics with ErrDimensionMismatch unless both operands have the same shape.
func NewBinaryOp(lhs, rhs Expr, word func(a, b BitPack) BitPack, cell func(a, b bool) bool) BinaryOp {
	if lhs == nil || rhs == nil || word == nil || cell == nil {
		panic(fmt.Errorf("NewBinaryOp: %w", ErrNilInput))
	}
	if lhs.Rows() != rhs.Rows() || lhs.Cols() != rhs.Cols() {
		panicf(nodeBinary, ctxNew, ErrDimensionMismatch, "(%dx%d vs %dx%d)",
			lhs.Rows(), lhs.Cols(), rhs.Rows(), rhs.Cols())
	}

	return BinaryOp{lhs: lhs, rhs: rhs, word: word, cell: cell}
}

// Rows returns the shared row count.
func (o BinaryOp) Rows() int { return o.lhs.Rows() }

// Cols returns the shared column count.
func (o BinaryOp) Cols() int { return o.lhs.Cols() }

// Bitpacks returns the word count of the shared shape.
func (o BinaryOp) Bitpacks() int { return bitpacksFor(Size(o)) }

// At applies the cell function to both operands' cell (i,j).
func (o BinaryOp) At(i, j int) bool {
	checkCell(nodeBinary, ctxAt, i, j, o.Rows(), o.Cols())

	return o.cell(o.lhs.At(i, j), o.rhs.At(i, j))
}

// Bitpack applies the word function to both operands' word k.
func (o BinaryOp) Bitpack(k int) BitPack { return o.word(o.lhs.Bitpack(k), o.rhs.Bitpack(k)) }

// String renders the evaluated expression.
func (o BinaryOp) String() string { return Format(o) }

// ---------- bitwise operators ----------

// Not returns the lazy complement ~x.
func Not(x Expr) UnaryOp {
	return NewUnaryOp(x,
		func(w BitPack) BitPack { return ^w },
		func(b bool) bool { return !b })
}

// And returns the lazy conjunction a & b.
func And(a, b Expr) BinaryOp {
	return NewBinaryOp(a, b,
		func(x, y BitPack) BitPack { return x & y },
		func(x, y bool) bool { return x && y })
}

// Or returns the lazy disjunction a | b.
func Or(a, b Expr) BinaryOp {
	return NewBinaryOp(a, b,
		func(x, y BitPack) BitPack { return x | y },
		func(x, y bool) bool { return x || y })
}

// Xor returns the lazy exclusive or a ^ b.
func Xor(a, b Expr) BinaryOp {
	return NewBinaryOp(a, b,
		func(x, y BitPack) BitPack { return x ^ y },
		func(x, y bool) bool { return x != y })
}
