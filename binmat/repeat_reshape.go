// SPDX-License-Identifier: MIT

package binmat

const (
	nodeRepeat  = "RepeatOp"
	nodeReshape = "ReshapeOp"
)

// RepeatOp tiles an expression repRows times vertically and repCols times
// horizontally. It is read-only; a *Matrix source is borrowed.
type RepeatOp struct {
	src              Expr
	repRows, repCols int
}

// Repeat returns the lazy (Rows()*repRows)×(Cols()*repCols) tiling of x.
// Panics with ErrBadShape on negative factors.
func Repeat(x Expr, repRows, repCols int) RepeatOp {
	if repRows < 0 || repCols < 0 {
		panicf(nodeRepeat, ctxNew, ErrBadShape, "(%d,%d)", repRows, repCols)
	}

	return RepeatOp{src: x, repRows: repRows, repCols: repCols}
}

// Rows returns Rows()*repRows of the source.
func (r RepeatOp) Rows() int { return r.src.Rows() * r.repRows }

// Cols returns Cols()*repCols of the source.
func (r RepeatOp) Cols() int { return r.src.Cols() * r.repCols }

// Bitpacks returns the word count of the tiled shape.
func (r RepeatOp) Bitpacks() int { return bitpacksFor(Size(r)) }

// At reads source cell (i mod rows, j mod cols).
func (r RepeatOp) At(i, j int) bool {
	checkCell(nodeRepeat, ctxAt, i, j, r.Rows(), r.Cols())

	return r.src.At(i%r.src.Rows(), j%r.src.Cols())
}

// Bitpack gathers word k of the tiled layout bit by bit.
// Tiling breaks word alignment in general, so every bit is read from the
// source cell it maps to; the source column index wraps as the tiled column advances.
// Complexity: O(64).
func (r RepeatOp) Bitpack(k int) BitPack {
	checkBitpack(nodeRepeat, k, r.Bitpacks())
	rows, cols := r.Rows(), r.Cols()
	first := k * PackSize
	if first >= rows*cols {
		return 0
	}
	valid := min(PackSize, rows*cols-first)
	sr, sc := r.src.Rows(), r.src.Cols()

	var out BitPack
	i, j := first/cols, first%cols
	for h := 0; h < valid; h++ {
		out |= bitOf(r.src.At(i%sr, j%sc)) << uint(h)
		if j++; j == cols {
			i, j = i+1, 0
		}
	}

	return out
}

// String renders the tiled expression.
func (r RepeatOp) String() string { return Format(r) }

// ReshapeOp reinterprets an expression's row-major cell sequence with a new
// rows×cols factorization. Storage order is unchanged, so words pass through.
type ReshapeOp struct {
	src        Expr
	rows, cols int
}

// Reshaped returns the lazy rows×cols view of x.
// Panics with ErrDimensionMismatch unless rows*cols == Size(x).
func Reshaped(x Expr, rows, cols int) ReshapeOp {
	if rows < 0 || cols < 0 || rows*cols != Size(x) {
		panicf(nodeReshape, ctxNew, ErrDimensionMismatch, "(%d,%d) of %dx%d", rows, cols, x.Rows(), x.Cols())
	}

	return ReshapeOp{src: x, rows: rows, cols: cols}
}

// VectorView returns x reshaped to a Size(x)×1 column.
func VectorView(x Expr) ReshapeOp { return Reshaped(x, Size(x), 1) }

// Rows returns the reshaped row count.
func (r ReshapeOp) Rows() int { return r.rows }

// Cols returns the reshaped column count.
func (r ReshapeOp) Cols() int { return r.cols }

// Bitpacks equals the source's word count (same size).
func (r ReshapeOp) Bitpacks() int { return bitpacksFor(r.rows * r.cols) }

// At maps (i,j) through the flat index i*cols+j back to a source cell.
func (r ReshapeOp) At(i, j int) bool {
	checkCell(nodeReshape, ctxAt, i, j, r.rows, r.cols)
	n, sc := i*r.cols+j, r.src.Cols()

	return r.src.At(n/sc, n%sc)
}

// Bitpack passes source word k through unchanged.
func (r ReshapeOp) Bitpack(k int) BitPack { return r.src.Bitpack(k) }

// String renders the reshaped expression.
func (r ReshapeOp) String() string { return Format(r) }
