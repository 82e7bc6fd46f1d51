// SPDX-License-Identifier: MIT

// Package binmat - constructors that build a Matrix from something else:
// constant patterns, expressions, numeric matrices, sequences and slices.

package binmat

import (
	"fmt"
	"iter"
	"slices"
)

// Ones returns a rows×cols matrix with every word set to all ones.
// Padding and guard bits are set too; reductions and comparisons mask them.
// Complexity: O(rows*cols/64).
func Ones(rows, cols int) *Matrix {
	m := New(rows, cols)
	for k := range m.data {
		m.data[k] = allOnes
	}

	return m
}

// OnesVector returns an n×1 column vector of ones with a dynamic length.
func OnesVector(n int) *Matrix {
	m := Ones(n, 1)
	m.fixCols = true

	return m
}

// Identity returns a rows×cols matrix with only the main diagonal set.
// Complexity: O(rows*cols/64) zeroing + O(min(rows,cols)) writes.
func Identity(rows, cols int) *Matrix {
	m := New(rows, cols)
	for k := 0; k < rows && k < cols; k++ {
		m.Set(k, k)
	}

	return m
}

// FromExpr realizes x into a new, dynamically sized matrix of the same shape.
func FromExpr(x Expr) *Matrix { return (&Matrix{}).Assign(x) }

// VectorFrom realizes a single row or column into a new n×1 column vector.
// Panics with ErrNotVector for any other shape.
func VectorFrom(x Expr) *Matrix { return NewVector(0).Assign(x) }

// FromNumeric builds a mask of a numeric matrix: nonzero ⇒ true.
// Errors are those of (*Matrix).AssignNumeric.
func FromNumeric(src Numeric) (*Matrix, error) {
	m := &Matrix{}
	if err := m.AssignNumeric(src); err != nil {
		return nil, err
	}

	return m, nil
}

// FromSeq fills a rows×cols matrix in row-major order from seq.
// MAIN DESCRIPTION:
//   - Iterator-pair construction: consumption stops at whichever ends first,
//     the sequence or the rows*cols cells; remaining cells stay false.
//
// Complexity:
//   - Time O(min(len(seq), rows*cols)), Space O(rows*cols/64).
func FromSeq(seq iter.Seq[bool], rows, cols int) *Matrix {
	m := New(rows, cols)
	size := rows * cols
	n := 0
	for b := range seq {
		if n >= size {
			break
		}
		if b {
			m.data[n/PackSize] |= BitPack(1) << uint(n%PackSize)
		}
		n++
	}

	return m
}

// FromBools fills a rows×cols matrix in row-major order from values.
// Extra values are ignored; missing values leave cells false.
func FromBools(values []bool, rows, cols int) *Matrix {
	return FromSeq(slices.Values(values), rows, cols)
}

// MakeVector returns a column vector v with v[i] == (values[i] == c).
// Use it to turn a scan over entity attributes into a marker vector.
func MakeVector[T comparable](values []T, c T) *Matrix {
	return MakeVectorFunc(values, func(v T) bool { return v == c })
}

// MakeVectorFunc returns a column vector v with v[i] == pred(values[i]).
// Panics with ErrNilInput when pred is nil.
func MakeVectorFunc[T any](values []T, pred func(T) bool) *Matrix {
	if pred == nil {
		panic(fmt.Errorf("MakeVectorFunc: %w", ErrNilInput))
	}
	v := NewVector(len(values))
	for i, x := range values {
		if pred(x) {
			v.data[i/PackSize] |= BitPack(1) << uint(i%PackSize)
		}
	}

	return v
}
