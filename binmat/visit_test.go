// SPDX-License-Identifier: MIT
package binmat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvbits/binmat"
	"github.com/stretchr/testify/require"
)

// TestReductionsOnOnes uses a 150x4 matrix of ones and a 500-element vector.
func TestReductionsOnOnes(t *testing.T) {
	m := binmat.Ones(150, 4)
	require.True(t, binmat.All(m))
	require.True(t, binmat.Any(m))
	require.Equal(t, 600, binmat.Count(m))

	m.Clear(149, 3)
	require.False(t, binmat.All(m))
	require.True(t, binmat.Any(m))
	require.Equal(t, 599, binmat.Count(m))

	v := binmat.NewVector(500)
	require.False(t, binmat.Any(v))
	v.SetIndex(499)
	require.True(t, binmat.Any(v))
	require.Equal(t, 1, binmat.Count(v))

	ones := binmat.OnesVector(500)
	require.True(t, binmat.All(ones))
	require.Equal(t, 500, binmat.Count(ones))
}

// TestReductionsSingleBitPositions flips one cell in the first, a middle and
// the last bitpack of shapes whose size is not a multiple of 64.
func TestReductionsSingleBitPositions(t *testing.T) {
	shapes := []struct {
		name       string
		rows, cols int
	}{
		{"150x4", 150, 4},
		{"7x19", 7, 19},
		{"vector 500", 500, 1},
	}
	for _, sh := range shapes {
		size := sh.rows * sh.cols
		positions := []int{0, binmat.PackSize, (size / 2 / binmat.PackSize) * binmat.PackSize, size - 1}
		for _, p := range positions {
			t.Run(fmt.Sprintf("%s/%d", sh.name, p), func(t *testing.T) {
				i, j := p/sh.cols, p%sh.cols

				ones := binmat.Ones(sh.rows, sh.cols)
				ones.Clear(i, j)
				require.False(t, binmat.All(ones))
				require.True(t, binmat.Any(ones))
				require.Equal(t, size-1, binmat.Count(ones))

				zeros := binmat.New(sh.rows, sh.cols)
				zeros.Set(i, j)
				require.True(t, binmat.Any(zeros))
				require.False(t, binmat.All(zeros))
				require.Equal(t, 1, binmat.Count(zeros))
				require.Equal(t, []int{p}, binmat.Which(zeros))
			})
		}
	}
}

// TestReductionsOnEmpty pins the vacuous results.
func TestReductionsOnEmpty(t *testing.T) {
	for _, x := range []binmat.Expr{binmat.New(0, 0), binmat.New(0, 7), binmat.Ones(3, 0)} {
		require.True(t, binmat.All(x))
		require.False(t, binmat.Any(x))
		require.Zero(t, binmat.Count(x))
	}
}

// TestReductionsOnLazyNodes reduce without realizing.
func TestReductionsOnLazyNodes(t *testing.T) {
	a := randomMatrix(51, 9, 31)
	require.Equal(t, 9*31, binmat.Count(binmat.Or(a, binmat.Not(a))))
	require.False(t, binmat.Any(binmat.And(a, binmat.Not(a))))
	require.Equal(t, binmat.Count(a), binmat.Count(binmat.Block(a, 0, 0, 9, 31)))
}

// recordingVisitor keeps every call it receives.
type recordingVisitor struct {
	full    []binmat.BitPack
	partial []int
	stopAt  int
}

func (r *recordingVisitor) Visit(w binmat.BitPack) { r.full = append(r.full, w) }

func (r *recordingVisitor) VisitPartial(_ binmat.BitPack, valid int) {
	r.partial = append(r.partial, valid)
}

func (r *recordingVisitor) Done() bool { return r.stopAt > 0 && len(r.full) >= r.stopAt }

// TestWalkBitpacksContract checks the full/partial split and early stop.
func TestWalkBitpacksContract(t *testing.T) {
	v := &recordingVisitor{}
	binmat.WalkBitpacks(binmat.New(3, 50), v) // 150 = 64 + 64 + 22
	require.Len(t, v.full, 2)
	require.Equal(t, []int{22}, v.partial)

	v = &recordingVisitor{}
	binmat.WalkBitpacks(binmat.New(2, 64), v)
	require.Len(t, v.full, 2)
	require.Empty(t, v.partial)

	v = &recordingVisitor{stopAt: 1}
	binmat.WalkBitpacks(binmat.New(10, 64), v)
	require.Len(t, v.full, 1)
	require.Empty(t, v.partial)
}

// bitCollector records cells in visit order.
type bitCollector struct{ bits []bool }

func (c *bitCollector) VisitBit(b bool) { c.bits = append(c.bits, b) }

// TestWalkBitsOrder visits exactly Size() cells in row-major order.
func TestWalkBitsOrder(t *testing.T) {
	m := randomMatrix(61, 3, 45)
	c := &bitCollector{}
	binmat.WalkBits(binmat.Not(m), c)
	require.Len(t, c.bits, 135)
	for n, b := range c.bits {
		require.Equal(t, !m.At(n/45, n%45), b, "cell %d", n)
	}
}
