// Package lvbits is a compact, bit-packed boolean matrix toolkit with lazy
// bitwise expressions, window views and word-at-a-time reductions.
//
// Under the hood, everything is organized under three subpackages:
//
//	binmat/    - packed Matrix storage, lazy Not/And/Or/Xor, Block/Row/Col
//	             views, Repeat/Reshape, All/Any/Count, Equal, Which, text
//	             output and interop (bitset, roaring, xxhash, numeric Dense)
//	matrix/    - numeric row-major Dense matrices that masks are built from
//	             and applied to
//	gridgraph/ - 2D grids as graphs: land/coast/boundary masks, islands and
//	             minimal-cost bridges
//
// Quick start:
//
//	m := binmat.New(5, 100)
//	m.Set(3, 47)
//	fmt.Println(binmat.Count(m), binmat.Which(m)) // 1 [347]
//
//	ones := binmat.Ones(5, 100)
//	fmt.Println(binmat.Equal(binmat.Not(binmat.Not(ones)), ones)) // true
//
// See examples/ for a runnable grid walkthrough.
package lvbits
