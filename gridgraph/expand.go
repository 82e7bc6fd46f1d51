// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
	"slices"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting any
// cell of component srcComp to any cell of component dstComp, as numbered by
// ConnectedComponents. Each water cell converted costs 1.
// Returns the row-major cell indices of the path (including the start and end
// land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices (ErrComponentIndex).
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     - moving into a land cell  → cost 0
//     - moving into a water cell → cost 1
//  3. Stop at the first dequeued cell of the destination mask.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("ExpandIsland(%d,%d) of %d: %w", srcComp, dstComp, len(comps), ErrComponentIndex)
	}
	dst := gg.componentMask(comps[dstComp])

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		ux, uy := gg.Coordinate(u)
		if dst.At(uy, ux) {
			target = u
			break
		}
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 1
			if gg.land.At(vy, vx) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}
