// Package gridgraph treats a 2D grid of integer cells as a graph and answers
// region questions with binary masks from package binmat.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - LandMask, BoundaryMask and CoastMask describe cell classes as H×W masks.
//   - ConnectedComponents finds "islands" of land; ComponentMask and
//     ComponentBitmaps export them as dense masks or compressed index sets.
//   - DistinctMasks drops duplicate masks by content hash plus exact check.
//   - ExpandIsland computes minimal water conversions (0-1 BFS) joining two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, coastlines, optimal bridging.
//   - Marker vectors: every mask flattens to the row-major index y*Width + x.
//
// Complexity:
//
//   - NewGridGraph: O(W×H). LandMask/BoundaryMask: O(W×H/64) words.
//   - CoastMask: O(d×W×H) with d = 4 or 8.
//   - ConnectedComponents, ExpandIsland: O(W×H×d), Memory O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
