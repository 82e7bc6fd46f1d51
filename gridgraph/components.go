// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/lvbits/binmat"
)

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn.
// MAIN DESCRIPTION:
//   - Components are discovered in row-major order of their first cell; each
//     component lists its row-major cell indices in increasing order.
//
// Implementation:
//   - Stage 1: a Height×Width binmat mask records visited cells.
//   - Stage 2: BFS from every unvisited land cell over in-bounds land neighbors.
//   - Stage 3: sort each component's indices.
//
// Complexity:
//   - Time O(W·H·d), Memory O(W·H/64) visited + output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := binmat.New(gg.Height, gg.Width)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.land.At(y, x) || seen.At(y, x) {
				continue
			}
			queue := []int{gg.index(x, y)}
			seen.Set(y, x)
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) || seen.At(vy, vx) {
						continue
					}
					seen.Set(vy, vx)
					queue = append(queue, gg.index(vx, vy))
				}
			}
			slices.Sort(queue)
			comps = append(comps, queue)
		}
	}

	return comps
}

// componentMask renders one component as a Height×Width mask.
func (gg *GridGraph) componentMask(comp []int) *binmat.Matrix {
	m := binmat.New(gg.Height, gg.Width)
	for _, i := range comp {
		x, y := gg.Coordinate(i)
		m.Set(y, x)
	}

	return m
}

// ComponentMask returns component idx of ConnectedComponents as a mask.
// Returns ErrComponentIndex when idx is out of range.
// Complexity: O(W·H·d).
func (gg *GridGraph) ComponentMask(idx int) (*binmat.Matrix, error) {
	comps := gg.ConnectedComponents()
	if idx < 0 || idx >= len(comps) {
		return nil, fmt.Errorf("ComponentMask(%d) of %d: %w", idx, len(comps), ErrComponentIndex)
	}

	return gg.componentMask(comps[idx]), nil
}

// ComponentMasks returns every component as a mask, in ConnectedComponents order.
func (gg *GridGraph) ComponentMasks() []*binmat.Matrix {
	comps := gg.ConnectedComponents()
	out := make([]*binmat.Matrix, len(comps))
	for i, c := range comps {
		out[i] = gg.componentMask(c)
	}

	return out
}

// ComponentBitmaps returns every component as a compressed set of row-major
// cell indices, in ConnectedComponents order.
// Errors: binmat.ErrTooLarge for grids with more than 2^32 cells.
// Complexity: O(k·W·H/64) for k components.
func (gg *GridGraph) ComponentBitmaps() ([]*roaring.Bitmap, error) {
	masks := gg.ComponentMasks()
	out := make([]*roaring.Bitmap, len(masks))
	for i, m := range masks {
		rb, err := binmat.ToRoaring(m)
		if err != nil {
			return nil, fmt.Errorf("ComponentBitmaps: component %d: %w", i, err)
		}
		out[i] = rb
	}

	return out, nil
}

// DistinctMasks returns masks with content duplicates removed, keeping the
// first occurrence and the input order. Nil entries are skipped.
// MAIN DESCRIPTION:
//   - Candidates are bucketed by binmat.Hash; within a bucket, shape and
//     binmat.Equal decide, so hash collisions never merge different masks.
//
// Complexity:
//   - Time O(n·size/64) expected, Space O(n).
func DistinctMasks(masks []*binmat.Matrix) []*binmat.Matrix {
	buckets := make(map[uint64][]*binmat.Matrix, len(masks))
	out := make([]*binmat.Matrix, 0, len(masks))
	for _, m := range masks {
		if m == nil {
			continue
		}
		h := binmat.Hash(m)
		if slices.ContainsFunc(buckets[h], func(k *binmat.Matrix) bool { return sameMask(k, m) }) {
			continue
		}
		buckets[h] = append(buckets[h], m)
		out = append(out, m)
	}

	return out
}

// sameMask compares shapes first so Equal never panics.
func sameMask(a, b *binmat.Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols() && binmat.Equal(a, b)
}
