// SPDX-License-Identifier: MIT

// Package gridgraph - cell-class masks.
//
// Every mask is Height×Width with cell (y,x) standing for grid cell (x,y), so
// its row-major flat index equals the index used by ConnectedComponents.
//
// AI-Hints:
//   - Masks are fresh copies; callers may mutate them.
//   - Combine masks with binmat.And/Or/Not and realize once with binmat.FromExpr.

package gridgraph

import "github.com/katalvlaran/lvbits/binmat"

// LandMask returns the cells whose value is ≥ LandThreshold.
// Complexity: O(W×H/64).
func (gg *GridGraph) LandMask() *binmat.Matrix {
	return gg.land.Clone()
}

// WaterMask returns the complement of LandMask.
// Complexity: O(W×H/64).
func (gg *GridGraph) WaterMask() *binmat.Matrix {
	return binmat.FromExpr(binmat.Not(gg.land))
}

// BoundaryMask returns the outer frame of the grid: first and last row,
// first and last column.
// Complexity: O(W+H).
func (gg *GridGraph) BoundaryMask() *binmat.Matrix {
	m := binmat.New(gg.Height, gg.Width)
	binmat.TopRows(m, 1).SetAll()
	binmat.BottomRows(m, 1).SetAll()
	binmat.LeftCols(m, 1).SetAll()
	binmat.RightCols(m, 1).SetAll()

	return m
}

// neighborMask returns the mask n with n(y,x) = land(y+dy, x+dx), false
// where the neighbor falls outside the grid.
// MAIN DESCRIPTION:
//   - A shifted copy of the land mask, built from one block assignment.
//
// Implementation:
//   - Stage 1: the overlap has extent (H-|dy|)×(W-|dx|); empty → all false.
//   - Stage 2: copy the source window starting at (max(dy,0), max(dx,0)) into
//     the destination window starting at (max(-dy,0), max(-dx,0)).
//
// Complexity:
//   - Time O(W×H), Space O(W×H/64).
func (gg *GridGraph) neighborMask(dx, dy int) *binmat.Matrix {
	n := binmat.New(gg.Height, gg.Width)
	rows, cols := gg.Height-abs(dy), gg.Width-abs(dx)
	if rows <= 0 || cols <= 0 {
		return n
	}
	src := binmat.Block(gg.land, max(dy, 0), max(dx, 0), rows, cols)
	n.Block(max(-dy, 0), max(-dx, 0), rows, cols).Assign(src)

	return n
}

// CoastMask returns the land cells with at least one water or off-grid
// neighbor under gg.Conn.
// MAIN DESCRIPTION:
//   - coast = land & ~interior, where interior is land AND-ed with every
//     shifted neighbor mask.
//
// Complexity:
//   - Time O(d×W×H), Space O(W×H/64), d = 4 or 8.
func (gg *GridGraph) CoastMask() *binmat.Matrix {
	interior := gg.land.Clone()
	for _, d := range gg.offsets {
		interior.Assign(binmat.And(interior, gg.neighborMask(d[0], d[1])))
	}

	return binmat.FromExpr(binmat.And(gg.land, binmat.Not(interior)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
