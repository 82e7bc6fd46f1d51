// SPDX-License-Identifier: MIT

// Package binmat - reductions over expressions.
//
// Purpose:
//   - Two traversal strategies sharing one visitor contract:
//     WalkBitpacks (word at a time, may stop early) and WalkBits (one call per
//     logical cell, for visitors that must see individual cells).
//   - All, Any and Count built on them, masking the partial trailing word so
//     padding bits never decide a result.
//
// Determinism:
//   - Words are visited in increasing order; bits LSB first.

package binmat

// PackVisitor consumes an expression one bitpack at a time.
//   - Visit receives a full word (64 valid bits).
//   - VisitPartial receives the trailing word and its count of valid low bits
//     (0 < valid < 64); the high bits are don't-care.
//   - Done reports that the result is decided and the walk may stop.
type PackVisitor interface {
	Visit(w BitPack)
	VisitPartial(w BitPack, valid int)
	Done() bool
}

// BitVisitor consumes an expression one logical cell at a time, row-major.
type BitVisitor interface {
	VisitBit(b bool)
}

// WalkBitpacks feeds the live words of x to v.
// MAIN DESCRIPTION:
//   - Word-level strategy: full words in order, then the partial word.
//
// Implementation:
//   - Stage 1: size 0 → nothing to visit.
//   - Stage 2: Visit each full word; return as soon as v.Done().
//   - Stage 3: VisitPartial the trailing word when size%64 != 0.
//
// Complexity:
//   - Time O(size/64) word evaluations, Space O(1).
func WalkBitpacks(x Expr, v PackVisitor) {
	size := Size(x)
	if size == 0 {
		return
	}
	full := size / PackSize
	for k := 0; k < full; k++ {
		v.Visit(x.Bitpack(k))
		if v.Done() {
			return
		}
	}
	if rem := size % PackSize; rem != 0 {
		v.VisitPartial(x.Bitpack(full), rem)
	}
}

// WalkBits feeds every logical cell of x to v, LSB of each word first.
// Complexity: O(size/64) word evaluations + O(size) visitor calls.
func WalkBits(x Expr, v BitVisitor) {
	size := Size(x)
	live := livePacks(size)
	for k, n := 0, 0; k < live; k++ {
		w := x.Bitpack(k)
		for h := 0; h < PackSize && n < size; h, n = h+1, n+1 {
			v.VisitBit(w&1 == 1)
			w >>= 1
		}
	}
}

// allVisitor: every valid bit is 1. Padding is forced to 1 before testing.
type allVisitor struct{ res bool }

func (a *allVisitor) Visit(w BitPack) { a.res = a.res && w == allOnes }

func (a *allVisitor) VisitPartial(w BitPack, valid int) {
	a.res = a.res && w|^lowMask(valid) == allOnes
}

func (a *allVisitor) Done() bool { return !a.res }

// anyVisitor: some valid bit is 1. Padding is forced to 0 before testing.
type anyVisitor struct{ res bool }

func (a *anyVisitor) Visit(w BitPack) { a.res = a.res || w != 0 }

func (a *anyVisitor) VisitPartial(w BitPack, valid int) {
	a.res = a.res || w&lowMask(valid) != 0
}

func (a *anyVisitor) Done() bool { return a.res }

// countVisitor counts true cells.
type countVisitor struct{ res int }

func (c *countVisitor) VisitBit(b bool) {
	if b {
		c.res++
	}
}

// All reports whether every cell of x is true (true for an empty expression).
func All(x Expr) bool {
	v := &allVisitor{res: true}
	WalkBitpacks(x, v)

	return v.res
}

// Any reports whether some cell of x is true (false for an empty expression).
func Any(x Expr) bool {
	v := &anyVisitor{}
	WalkBitpacks(x, v)

	return v.res
}

// Count returns the number of true cells of x.
func Count(x Expr) int {
	v := &countVisitor{}
	WalkBits(x, v)

	return v.res
}
