// SPDX-License-Identifier: MIT

// Package binmat - BlockView: a rectangular window onto another expression.
//
// Purpose:
//   - Address rows, columns and sub-rectangles without copying.
//   - Rebuild word-aligned bitpacks of the window's own packing layout, which
//     in general does not line up with the source's word boundaries.
//   - Write through to the source when the source is Writable.
//
// AI-Hints:
//   - Full-width blocks and single rows are contiguous in the source and take
//     the two-word funnel-shift path; every other block gathers bit by bit.
//   - Assigning between overlapping blocks of one matrix is safe: the right
//     hand side is realized first.

package binmat

const nodeBlock = "BlockView"

// BlockView is a rows×cols window starting at (r0,c0) of src.
// The source is borrowed when it is a *Matrix and copied when it is a lazy node.
type BlockView struct {
	src        Expr
	dst        Writable // nil unless src is writable
	r0, c0     int      // top-left corner in src
	rows, cols int      // window extent
}

var _ Writable = BlockView{}

// Block returns the rows×cols window of x starting at (r0,c0).
// The window is writable when x is a *Matrix or a writable BlockView.
// Panics with ErrBadShape unless the window lies inside x.
// Complexity: O(1).
func Block(x Expr, r0, c0, rows, cols int) BlockView {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > x.Rows() || c0+cols > x.Cols() {
		panicf(nodeBlock, ctxNew, ErrBadShape, "(%d,%d,%d,%d) on %dx%d", r0, c0, rows, cols, x.Rows(), x.Cols())
	}
	dst, _ := x.(Writable)
	if inner, ok := x.(BlockView); ok && !inner.Writable() {
		dst = nil
	}

	return BlockView{src: x, dst: dst, r0: r0, c0: c0, rows: rows, cols: cols}
}

// Row returns the 1×Cols() view of row i of x.
func Row(x Expr, i int) BlockView {
	if i < 0 || i >= x.Rows() {
		panicf(nodeBlock, ctxRow, ErrOutOfRange, "(%d) on %dx%d", i, x.Rows(), x.Cols())
	}

	return Block(x, i, 0, 1, x.Cols())
}

// Col returns the Rows()×1 view of column j of x.
func Col(x Expr, j int) BlockView {
	if j < 0 || j >= x.Cols() {
		panicf(nodeBlock, ctxCol, ErrOutOfRange, "(%d) on %dx%d", j, x.Rows(), x.Cols())
	}

	return Block(x, 0, j, x.Rows(), 1)
}

// TopRows returns the first n rows of x.
func TopRows(x Expr, n int) BlockView { return Block(x, 0, 0, n, x.Cols()) }

// BottomRows returns the last n rows of x.
func BottomRows(x Expr, n int) BlockView { return Block(x, x.Rows()-n, 0, n, x.Cols()) }

// MiddleRows returns n rows of x starting at row start.
func MiddleRows(x Expr, start, n int) BlockView { return Block(x, start, 0, n, x.Cols()) }

// LeftCols returns the first n columns of x.
func LeftCols(x Expr, n int) BlockView { return Block(x, 0, 0, x.Rows(), n) }

// RightCols returns the last n columns of x.
func RightCols(x Expr, n int) BlockView { return Block(x, 0, x.Cols()-n, x.Rows(), n) }

// MiddleCols returns n columns of x starting at column start.
func MiddleCols(x Expr, start, n int) BlockView { return Block(x, 0, start, x.Rows(), n) }

// Rows returns the window height.
func (b BlockView) Rows() int { return b.rows }

// Cols returns the window width.
func (b BlockView) Cols() int { return b.cols }

// Bitpacks returns the word count of the window's own layout.
func (b BlockView) Bitpacks() int { return bitpacksFor(b.rows * b.cols) }

// Writable reports whether writes reach the source.
func (b BlockView) Writable() bool { return b.dst != nil }

// At reads window cell (i,j) from source cell (i+r0, j+c0).
func (b BlockView) At(i, j int) bool {
	checkCell(nodeBlock, ctxAt, i, j, b.rows, b.cols)

	return b.src.At(i+b.r0, j+b.c0)
}

// Bitpack rebuilds word k of the window's row-major layout.
// MAIN DESCRIPTION:
//   - Window bit n (n = k*64 + h) is window cell (n/cols, n%cols), i.e. source
//     cell (r0 + n/cols, c0 + n%cols).
//
// Implementation:
//   - Stage 1: words at or past the live range are zero.
//   - Stage 2: contiguous window (full source width, or one row) → the window
//     is the source bit range starting at r0*srcCols + c0: funnel-shift the
//     two source words covering it.
//   - Stage 3: otherwise gather one bit per source At, advancing (row,col)
//     with the window's own stride.
//   - Stage 4: mask bits past the window size.
//
// Complexity:
//   - Time O(1) contiguous, O(64) gather; Space O(1).
func (b BlockView) Bitpack(k int) BitPack {
	checkBitpack(nodeBlock, k, b.Bitpacks())
	size := b.rows * b.cols
	first := k * PackSize
	if first >= size {
		return 0
	}
	valid := min(PackSize, size-first)

	if b.rows == 1 || b.cols == b.src.Cols() {
		return b.shiftedWord(first) & lowMask(valid)
	}

	var out BitPack
	r, c := first/b.cols, first%b.cols
	for h := 0; h < valid; h++ {
		out |= bitOf(b.src.At(b.r0+r, b.c0+c)) << uint(h)
		if c++; c == b.cols {
			r, c = r+1, 0
		}
	}

	return out
}

// shiftedWord reads 64 source bits starting at window bit first of a contiguous window.
func (b BlockView) shiftedWord(first int) BitPack {
	base := b.r0*b.src.Cols() + b.c0 + first
	w, s := base/PackSize, uint(base%PackSize)
	out := b.src.Bitpack(w) >> s
	if s != 0 && w+1 < b.src.Bitpacks() {
		out |= b.src.Bitpack(w+1) << (PackSize - s)
	}

	return out
}

// writable returns the source for writes or panics with ErrReadOnly.
func (b BlockView) writable(method string) Writable {
	if b.dst == nil {
		panicf(nodeBlock, method, ErrReadOnly, "")
	}

	return b.dst
}

// Set sets window cell (i,j) in the source.
func (b BlockView) Set(i, j int) {
	dst := b.writable(ctxSet)
	checkCell(nodeBlock, ctxSet, i, j, b.rows, b.cols)
	dst.Set(i+b.r0, j+b.c0)
}

// Clear clears window cell (i,j) in the source.
func (b BlockView) Clear(i, j int) {
	dst := b.writable(ctxClear)
	checkCell(nodeBlock, ctxClear, i, j, b.rows, b.cols)
	dst.Clear(i+b.r0, j+b.c0)
}

// SetAll sets every cell of the window in the source.
// Complexity: O(rows*cols).
func (b BlockView) SetAll() {
	dst := b.writable(ctxSet)
	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			dst.Set(i+b.r0, j+b.c0)
		}
	}
}

// ClearAll clears every cell of the window in the source.
// Complexity: O(rows*cols).
func (b BlockView) ClearAll() {
	dst := b.writable(ctxClear)
	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			dst.Clear(i+b.r0, j+b.c0)
		}
	}
}

// Assign copies x cell by cell into the window and returns the window.
// MAIN DESCRIPTION:
//   - Element-wise copy honoring the window's shape: true cells are set,
//     false cells cleared. It replaces the window rather than OR-ing into it;
//     to merge, assign Or(b, x).
//
// Implementation:
//   - Stage 1: require a writable source and x.Rows()==rows, x.Cols()==cols.
//   - Stage 2: realize x into a temporary Matrix (x may overlap the window).
//   - Stage 3: copy row-major.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols/64).
func (b BlockView) Assign(x Expr) BlockView {
	dst := b.writable(ctxAssign)
	if x.Rows() != b.rows || x.Cols() != b.cols {
		panicf(nodeBlock, ctxAssign, ErrDimensionMismatch, "(%dx%d into %dx%d)", x.Rows(), x.Cols(), b.rows, b.cols)
	}
	tmp := FromExpr(x)
	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			if tmp.At(i, j) {
				dst.Set(i+b.r0, j+b.c0)
			} else {
				dst.Clear(i+b.r0, j+b.c0)
			}
		}
	}

	return b
}

// String renders the window.
func (b BlockView) String() string { return Format(b) }
