// SPDX-License-Identifier: MIT
package binmat_test

import (
	"testing"

	"github.com/katalvlaran/lvbits/binmat"
	"github.com/stretchr/testify/require"
)

// opShapes spans empty, sub-word, exact-word and multi-word sizes.
var opShapes = []struct{ rows, cols int }{
	{0, 0}, {1, 1}, {3, 5}, {1, 64}, {2, 32}, {5, 100}, {9, 13},
}

// TestBitwiseOperatorsMatchCells compares every lazy operator with a
// cell-by-cell reference, both through At and through realization.
func TestBitwiseOperatorsMatchCells(t *testing.T) {
	for n, s := range opShapes {
		a := randomMatrix(uint64(10+n), s.rows, s.cols)
		b := randomMatrix(uint64(20+n), s.rows, s.cols)

		cases := []struct {
			name string
			expr binmat.Expr
			cell func(i, j int) bool
		}{
			{"not", binmat.Not(a), func(i, j int) bool { return !a.At(i, j) }},
			{"and", binmat.And(a, b), func(i, j int) bool { return a.At(i, j) && b.At(i, j) }},
			{"or", binmat.Or(a, b), func(i, j int) bool { return a.At(i, j) || b.At(i, j) }},
			{"xor", binmat.Xor(a, b), func(i, j int) bool { return a.At(i, j) != b.At(i, j) }},
			{"nested", binmat.Or(binmat.And(a, binmat.Not(b)), binmat.Xor(b, binmat.Not(a))),
				func(i, j int) bool { return (a.At(i, j) && !b.At(i, j)) || (b.At(i, j) != !a.At(i, j)) }},
		}
		for _, tc := range cases {
			want := fromFunc(s.rows, s.cols, tc.cell)
			requireSameCells(t, want, tc.expr)
			require.True(t, binmat.Equal(want, binmat.FromExpr(tc.expr)), "%s %dx%d", tc.name, s.rows, s.cols)
			require.Equal(t, binmat.Count(want), binmat.Count(tc.expr), "%s %dx%d", tc.name, s.rows, s.cols)
		}
	}
}

// TestNotIgnoresPadding: the complement flips padding bits, reductions must not see them.
func TestNotIgnoresPadding(t *testing.T) {
	z := binmat.New(3, 5)
	require.Equal(t, 15, binmat.Count(binmat.Not(z)))
	require.True(t, binmat.All(binmat.Not(z)))
	require.False(t, binmat.Any(binmat.Not(binmat.Ones(3, 5))))
}

// TestOperatorShapes checks shape propagation and the word count of nodes.
func TestOperatorShapes(t *testing.T) {
	a := binmat.New(4, 70)
	x := binmat.Xor(a, binmat.Not(a))
	require.Equal(t, 4, x.Rows())
	require.Equal(t, 70, x.Cols())
	require.Equal(t, a.Bitpacks(), x.Bitpacks())
}

// TestOperatorPanics covers mismatched shapes, nil inputs and bad cells.
func TestOperatorPanics(t *testing.T) {
	requirePanicsWith(t, binmat.ErrDimensionMismatch, func() { binmat.And(binmat.New(2, 3), binmat.New(3, 2)) })
	requirePanicsWith(t, binmat.ErrDimensionMismatch, func() { binmat.Or(binmat.New(6, 1), binmat.New(1, 6)) })
	requirePanicsWith(t, binmat.ErrNilInput, func() { binmat.Not(nil) })
	requirePanicsWith(t, binmat.ErrNilInput, func() {
		binmat.NewBinaryOp(binmat.New(1, 1), binmat.New(1, 1), nil, nil)
	})
	requirePanicsWith(t, binmat.ErrOutOfRange, func() { binmat.Not(binmat.New(2, 2)).At(2, 0) })
	requirePanicsWith(t, binmat.ErrOutOfRange, func() { binmat.And(binmat.New(2, 2), binmat.New(2, 2)).At(0, -1) })
}

// TestCustomOperator builds an and-not node from the exported constructors.
func TestCustomOperator(t *testing.T) {
	a := fromFunc(2, 3, func(i, j int) bool { return j != 1 })
	b := fromFunc(2, 3, func(i, j int) bool { return i == 0 })
	andNot := binmat.NewBinaryOp(a, b,
		func(x, y binmat.BitPack) binmat.BitPack { return x &^ y },
		func(x, y bool) bool { return x && !y })

	require.Equal(t, "000\n101", andNot.String())
}

// TestOperatorsReadLiveOperands: a *Matrix operand is borrowed, not copied.
func TestOperatorsReadLiveOperands(t *testing.T) {
	a := binmat.New(2, 2)
	n := binmat.Not(a)
	require.True(t, n.At(1, 1))

	a.Set(1, 1)
	require.False(t, n.At(1, 1))
}
