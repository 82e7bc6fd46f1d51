// SPDX-License-Identifier: MIT

package binmat

// checkSameShape panics with ErrDimensionMismatch unless a and b share a shape.
func checkSameShape(method string, a, b Expr) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		panicf("Expr", method, ErrDimensionMismatch, "(%dx%d vs %dx%d)", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
}

// Equal reports whether a and b hold the same cells.
// MAIN DESCRIPTION:
//   - Full words are compared directly; the trailing partial word only under
//     the mask of its valid low bits, so padding never breaks equality.
//
// Errors:
//   - Panics with ErrDimensionMismatch when shapes differ.
//
// Complexity:
//   - Time O(size/64) word evaluations, stops at the first difference.
func Equal(a, b Expr) bool {
	checkSameShape(ctxEqual, a, b)
	size := Size(a)
	full := size / PackSize
	for k := 0; k < full; k++ {
		if a.Bitpack(k) != b.Bitpack(k) {
			return false
		}
	}
	if rem := size % PackSize; rem != 0 {
		mask := lowMask(rem)

		return a.Bitpack(full)&mask == b.Bitpack(full)&mask
	}

	return true
}

// NotEqual reports whether a and b differ in at least one cell.
// Panics with ErrDimensionMismatch when shapes differ.
func NotEqual(a, b Expr) bool { return !Equal(a, b) }

// Which returns the row-major flat indices i*Cols()+j of the true cells of x.
func Which(x Expr) []int { return WhichValue(x, true) }

// WhichValue returns, in increasing order, the row-major flat indices of the
// cells of x equal to b. The scan reads every cell through At.
// Complexity: O(size).
func WhichValue(x Expr, b bool) []int {
	out := make([]int, 0)
	rows, cols := x.Rows(), x.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if x.At(i, j) == b {
				out = append(out, i*cols+j)
			}
		}
	}

	return out
}
