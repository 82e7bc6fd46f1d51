// SPDX-License-Identifier: MIT
package binmat_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvbits/binmat"
	"github.com/stretchr/testify/require"
)

// requirePanicsWith runs fn and requires a panic whose value is an error
// wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// fromFunc builds a rows×cols matrix cell by cell.
func fromFunc(rows, cols int, f func(i, j int) bool) *binmat.Matrix {
	m := binmat.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if f(i, j) {
				m.Set(i, j)
			}
		}
	}

	return m
}

// randomMatrix returns a reproducible rows×cols matrix with about half the cells set.
func randomMatrix(seed uint64, rows, cols int) *binmat.Matrix {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return fromFunc(rows, cols, func(_, _ int) bool { return rng.IntN(2) == 1 })
}

// requireSameCells compares got with want through At only.
func requireSameCells(t *testing.T, want, got binmat.Expr) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.Equal(t, want.At(i, j), got.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}
