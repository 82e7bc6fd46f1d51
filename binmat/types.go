// SPDX-License-Identifier: MIT

// Package binmat: domain types shared by every node of an expression tree,
// plus the packing arithmetic that maps cells onto bitpacks.
package binmat

// BitPack is the atomic unit of storage and of bitwise evaluation.
type BitPack = uint64

// PackSize is the number of cells held by one BitPack.
const PackSize = 64

const allOnes = ^BitPack(0)

// Expr is the capability every node of a binary expression tree provides.
//
// Contract:
//   - At(i,j) panics (ErrOutOfRange) outside [0,Rows())×[0,Cols()).
//   - Bitpack(k) is valid for 0 ≤ k < Bitpacks() and returns word k of the
//     node's own row-major packing; bits past Rows()*Cols() are don't-care.
//   - For every valid (i,j), At(i,j) equals bit (i*Cols()+j)%PackSize of
//     Bitpack((i*Cols()+j)/PackSize).
type Expr interface {
	Rows() int
	Cols() int
	Bitpacks() int
	At(i, j int) bool
	Bitpack(k int) BitPack
}

// Writable is an Expr whose cells can be written in place.
// *Matrix and BlockView over a Writable source implement it.
type Writable interface {
	Expr
	Set(i, j int)
	Clear(i, j int)
}

// Numeric is a read-only numeric matrix used as a mask source.
// matrix.Matrix and *matrix.MatrixView satisfy it.
type Numeric interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}

// numericVisitor is a Numeric source that streams its cells row-major.
type numericVisitor interface {
	Do(f func(i, j int, v float64) bool)
}

// Size returns Rows()*Cols() of any expression.
func Size(x Expr) int { return x.Rows() * x.Cols() }

// ---------- packing arithmetic ----------

// livePacks is the minimum number of words covering size cells.
func livePacks(size int) int { return (size + PackSize - 1) / PackSize }

// bitpacksFor is the word count reserved for size cells: the live words plus
// one guard word that is always safe to read.
func bitpacksFor(size int) int { return livePacks(size) + 1 }

// lowMask keeps the valid low bits of a partial word (0 < valid ≤ PackSize).
func lowMask(valid int) BitPack {
	if valid >= PackSize {
		return allOnes
	}

	return BitPack(1)<<uint(valid) - 1
}

// bitOf converts a bool to the single low bit.
func bitOf(b bool) BitPack {
	if b {
		return 1
	}

	return 0
}
