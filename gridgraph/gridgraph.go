// SPDX-License-Identifier: MIT

package gridgraph

import (
	"slices"

	"github.com/katalvlaran/lvbits/binmat"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// MAIN DESCRIPTION:
//   - Deep-copies the input and classifies every cell once into the land mask.
//
// Implementation:
//   - Stage 1: validate shape (ErrEmptyGrid, ErrNonRectangular).
//   - Stage 2: copy rows and flatten them row-major.
//   - Stage 3: land = flat marker vector (value ≥ threshold) reshaped to H×W.
//
// Complexity:
//   - Time O(W×H), Memory O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	flat := make([]int, 0, w*h)
	for y := 0; y < h; y++ {
		cells[y] = slices.Clone(values[y])
		flat = append(flat, values[y]...)
	}
	marks := binmat.MakeVectorFunc(flat, func(v int) bool { return v >= opts.LandThreshold })

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
		land:          binmat.FromExpr(binmat.Reshaped(marks, h, w)),
	}, nil
}

// From2D builds a GridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and holds a land value.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.land.At(y, x)
}

// NeighborOffsets returns a copy of the (dx,dy) neighbor offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return slices.Clone(gg.offsets)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
