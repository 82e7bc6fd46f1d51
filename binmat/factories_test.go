// SPDX-License-Identifier: MIT
package binmat_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvbits/binmat"
	"github.com/stretchr/testify/require"
)

// TestOnesAndIdentity checks the constant patterns.
func TestOnesAndIdentity(t *testing.T) {
	o := binmat.Ones(3, 5)
	require.True(t, binmat.All(o))
	require.Equal(t, 15, binmat.Count(o))

	id := binmat.Identity(5, 5)
	require.Equal(t, 5, binmat.Count(id))
	for k := 0; k < 5; k++ {
		require.True(t, id.At(k, k))
	}

	wide := binmat.Identity(3, 5)
	require.Equal(t, 3, binmat.Count(wide))
	require.True(t, wide.At(2, 2))
	require.False(t, wide.At(2, 3))
	require.Equal(t, 2, binmat.Count(binmat.Identity(4, 2)))
}

// TestFromSeqAndBools fill row-major and stop at the shorter side.
func TestFromSeqAndBools(t *testing.T) {
	short := binmat.FromBools([]bool{true, false, true}, 2, 3)
	require.Equal(t, "101\n000", short.String())

	long := binmat.FromBools([]bool{true, true, false, false, true, true, true}, 2, 2)
	require.Equal(t, "11\n00", long.String())

	seq := binmat.FromSeq(slices.Values([]bool{false, true}), 1, 2)
	require.Equal(t, []int{1}, binmat.Which(seq))
}

// TestMakeVector marks positions of a value.
func TestMakeVector(t *testing.T) {
	v := binmat.MakeVector([]int{1, 2, 1, 3}, 1)
	require.Equal(t, 4, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.Equal(t, []int{0, 2}, binmat.Which(v))

	names := binmat.MakeVector([]string{"sea", "land", "sea"}, "land")
	require.Equal(t, []int{1}, binmat.Which(names))

	big := binmat.MakeVectorFunc(make([]float64, 130), func(x float64) bool { return x == 0 })
	require.True(t, binmat.All(big))
	require.Equal(t, 130, binmat.Count(big))

	require.Equal(t, 0, binmat.MakeVector([]int(nil), 0).Rows())
	requirePanicsWith(t, binmat.ErrNilInput, func() { binmat.MakeVectorFunc([]int{1}, nil) })
}

// TestFromExprIsDynamic: realization never inherits a fixed shape.
func TestFromExprIsDynamic(t *testing.T) {
	m := binmat.FromExpr(binmat.NewFixed(2, 2))
	require.False(t, m.FixedRows())
	m.Resize(3, 3)
	require.Equal(t, 9, m.Size())
}
