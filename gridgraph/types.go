// SPDX-License-Identifier: MIT

// Package gridgraph defines the grid type, its options and connectivity.
package gridgraph

import "github.com/katalvlaran/lvbits/binmat"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}

	return "Conn4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
//   - Width and Height define dimensions; CellValues[y][x] holds the input value.
//   - Conn and LandThreshold come from GridOptions.
//   - land caches the H×W land mask; cell (y,x) of every mask is grid cell (x,y).
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int

	offsets [][2]int       // neighbor (dx,dy) pairs for Conn
	land    *binmat.Matrix // value ≥ LandThreshold
}
