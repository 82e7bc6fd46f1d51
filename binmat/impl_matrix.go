// SPDX-License-Identifier: MIT

// Package binmat - Matrix: the owning, packed storage leaf.
//
// Purpose:
//   - Hold rows×cols cells in ceil(size/64)+1 words (one guard word).
//   - Be the only node that is mutable, resizable and assignable; every lazy
//     expression converges here when realized.
//   - Support fixed extents per axis in place of compile-time shapes.
//
// AI-Hints:
//   - Prefer Assign over element loops: realization copies whole words.
//   - Views (Row/Col/Block) borrow the matrix; do not Resize while they live.
//
// Complexity quicksheet:
//   - New/Resize: O(size/64) zeroing; At/Set/Clear: O(1); SetAll/ClearAll: O(size/64);
//     Assign: O(bitpacks of the source) word evaluations; Clone: O(size/64).

package binmat

import "fmt"

const nodeMatrix = "Matrix"

// Matrix is a dense, bit-packed boolean matrix.
//   - rows, cols hold the logical shape.
//   - fixRows/fixCols pin an axis to its construction extent (static shape).
//   - data holds the live words followed by one guard word.
//
// The zero value is an empty, fully dynamic 0×0 matrix ready for Resize or Assign.
// A *Matrix nested in an expression is borrowed by reference.
type Matrix struct {
	rows, cols       int       // logical shape
	fixRows, fixCols bool      // static extents; a fixed axis never changes
	data             []BitPack // row-major packed cells, len == bitpacksFor(rows*cols)
}

// Compile-time assertions for interface conformance.
var (
	_ Writable     = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// New returns a zero-filled, dynamically sized rows×cols matrix.
// Panics with ErrBadShape on negative extents.
// Complexity: O(rows*cols/64).
func New(rows, cols int) *Matrix {
	m := &Matrix{}
	m.reshape(ctxResize, rows, cols)

	return m
}

// NewFixed returns a zero-filled rows×cols matrix whose both extents are fixed.
// Resize and Assign accept only the same shape afterwards.
func NewFixed(rows, cols int) *Matrix {
	m := New(rows, cols)
	m.fixRows, m.fixCols = true, true

	return m
}

// NewVector returns a zero-filled n×1 column vector with a dynamic length.
func NewVector(n int) *Matrix {
	m := New(n, 1)
	m.fixCols = true

	return m
}

// NewFixedVector returns a zero-filled n×1 column vector with a fixed length.
func NewFixedVector(n int) *Matrix {
	m := NewVector(n)
	m.fixRows = true

	return m
}

// reshape validates the shape and replaces storage with zeroed words.
func (m *Matrix) reshape(method string, rows, cols int) {
	if rows < 0 || cols < 0 {
		panicf(nodeMatrix, method, ErrBadShape, "(%d,%d)", rows, cols)
	}
	m.rows, m.cols = rows, cols
	m.data = make([]BitPack, bitpacksFor(rows*cols)) // make() zero-fills
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Size returns rows*cols. Complexity: O(1).
func (m *Matrix) Size() int { return m.rows * m.cols }

// Bitpacks returns the number of reserved words, guard word included.
func (m *Matrix) Bitpacks() int { return bitpacksFor(m.rows * m.cols) }

// IsVector reports whether the matrix has exactly one column.
func (m *Matrix) IsVector() bool { return m.cols == 1 }

// FixedRows reports whether the row extent is fixed.
func (m *Matrix) FixedRows() bool { return m.fixRows }

// FixedCols reports whether the column extent is fixed.
func (m *Matrix) FixedCols() bool { return m.fixCols }

// locate maps (i,j) to (word, bit) after bounds validation.
// MAIN DESCRIPTION:
//   - Single source of truth for the row-major packing formula.
//
// Implementation:
//   - Stage 1: check 0 ≤ i < rows and 0 ≤ j < cols; panic otherwise.
//   - Stage 2: n = i*cols + j; return (n/64, n%64).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) locate(method string, i, j int) (int, uint) {
	checkCell(nodeMatrix, method, i, j, m.rows, m.cols)
	n := i*m.cols + j

	return n / PackSize, uint(n % PackSize)
}

// At reports the value of cell (i,j). Panics with ErrOutOfRange outside the matrix.
func (m *Matrix) At(i, j int) bool {
	k, b := m.locate(ctxAt, i, j)

	return m.data[k]>>b&1 == 1
}

// Set sets cell (i,j) to true. Panics with ErrOutOfRange outside the matrix.
func (m *Matrix) Set(i, j int) {
	k, b := m.locate(ctxSet, i, j)
	m.data[k] |= BitPack(1) << b
}

// Clear sets cell (i,j) to false. Panics with ErrOutOfRange outside the matrix.
func (m *Matrix) Clear(i, j int) {
	k, b := m.locate(ctxClear, i, j)
	m.data[k] &^= BitPack(1) << b
}

// vectorIndex validates a vector subscript.
func (m *Matrix) vectorIndex(i int) {
	if m.cols != 1 {
		panicf(nodeMatrix, ctxIndex, ErrNotVector, "(%d) on %dx%d", i, m.rows, m.cols)
	}
}

// AtIndex reports element i of a column vector.
func (m *Matrix) AtIndex(i int) bool {
	m.vectorIndex(i)

	return m.At(i, 0)
}

// SetIndex sets element i of a column vector.
func (m *Matrix) SetIndex(i int) {
	m.vectorIndex(i)
	m.Set(i, 0)
}

// ClearIndex clears element i of a column vector.
func (m *Matrix) ClearIndex(i int) {
	m.vectorIndex(i)
	m.Clear(i, 0)
}

// SetAll sets every logical cell; padding and guard bits are left untouched.
// MAIN DESCRIPTION:
//   - Whole-matrix fill. The logical region of a matrix is the contiguous bit
//     range [0,size), so full words are overwritten and the trailing partial
//     word is OR-ed with the mask of its valid low bits.
//
// Complexity:
//   - Time O(size/64), Space O(1).
func (m *Matrix) SetAll() {
	size := m.Size()
	full := size / PackSize
	for k := 0; k < full; k++ {
		m.data[k] = allOnes
	}
	if rem := size % PackSize; rem != 0 {
		m.data[full] |= lowMask(rem)
	}
}

// ClearAll clears every logical cell; padding and guard bits are left untouched.
// Complexity: O(size/64).
func (m *Matrix) ClearAll() {
	size := m.Size()
	full := size / PackSize
	for k := 0; k < full; k++ {
		m.data[k] = 0
	}
	if rem := size % PackSize; rem != 0 {
		m.data[full] &^= lowMask(rem)
	}
}

// Bitpack returns word k of the storage, 0 ≤ k < Bitpacks().
func (m *Matrix) Bitpack(k int) BitPack {
	checkBitpack(nodeMatrix, k, m.Bitpacks())
	if k >= len(m.data) { // zero value: nothing allocated yet
		return 0
	}

	return m.data[k]
}

// SetBitpack overwrites word k of the storage, 0 ≤ k < Bitpacks().
// Bits past Size() are stored as given and stay don't-care.
func (m *Matrix) SetBitpack(k int, w BitPack) {
	checkBitpack(nodeMatrix, k, m.Bitpacks())
	if m.data == nil {
		m.data = make([]BitPack, m.Bitpacks())
	}
	m.data[k] = w
}

// Resize changes the shape to rows×cols, discarding every previous cell.
// MAIN DESCRIPTION:
//   - Always reallocates and zero-fills, even when the shape is unchanged.
//
// Implementation:
//   - Stage 1: a fixed axis must receive its current extent (ErrFixedShape).
//   - Stage 2: allocate bitpacksFor(rows*cols) zero words.
//
// Notes:
//   - Views built on m keep their old bounds and become invalid.
//
// Complexity:
//   - Time O(rows*cols/64), Space O(rows*cols/64).
func (m *Matrix) Resize(rows, cols int) {
	m.checkFixed(ctxResize, rows, cols)
	m.reshape(ctxResize, rows, cols)
}

// ResizeVector changes the length of a column vector, discarding its contents.
func (m *Matrix) ResizeVector(n int) {
	if !m.fixCols || m.cols != 1 {
		panicf(nodeMatrix, ctxResize, ErrNotVector, "(%d) on %dx%d", n, m.rows, m.cols)
	}
	m.Resize(n, 1)
}

// checkFixed panics with ErrFixedShape when a fixed axis would change.
func (m *Matrix) checkFixed(method string, rows, cols int) {
	if (m.fixRows && rows != m.rows) || (m.fixCols && cols != m.cols) {
		panicf(nodeMatrix, method, ErrFixedShape, "(%d,%d) on fixed %dx%d", rows, cols, m.rows, m.cols)
	}
}

// Assign realizes x into m and returns m.
// MAIN DESCRIPTION:
//   - Fast word-wise realization of any expression: shape is re-derived from
//     x and every live bitpack of x is copied 1:1.
//
// Implementation:
//   - Stage 1: derive the target shape. A column-vector target (fixed cols=1)
//     accepts a 1×N or N×1 source as N×1, since both share one linear layout;
//     any other source shape panics (ErrNotVector).
//   - Stage 2: a fixed axis must match the derived extent (ErrFixedShape).
//   - Stage 3: evaluate the live words of x into a fresh buffer, then swap,
//     so x may read m itself (m.Assign(And(m, y))).
//
// Behavior highlights:
//   - The guard word of the result is zero; padding bits keep whatever x produced.
//
// Complexity:
//   - Time O(size/64) word evaluations of x, Space O(size/64).
func (m *Matrix) Assign(x Expr) *Matrix {
	rows, cols := x.Rows(), x.Cols()
	if m.fixCols && m.cols == 1 {
		switch {
		case cols == 1:
		case rows == 1:
			rows, cols = cols, 1
		default:
			panicf(nodeMatrix, ctxAssign, ErrNotVector, "(%dx%d source)", x.Rows(), x.Cols())
		}
	}
	m.checkFixed(ctxAssign, rows, cols)

	size := rows * cols
	buf := make([]BitPack, bitpacksFor(size))
	live := livePacks(size)
	for k := 0; k < live; k++ {
		buf[k] = x.Bitpack(k)
	}
	m.rows, m.cols, m.data = rows, cols, buf

	return m
}

// AssignNumeric rebuilds m from a numeric matrix: nonzero ⇒ true.
// MAIN DESCRIPTION:
//   - Element-wise realization of a dense numeric source (no word fast path).
//   - Sources with a row-major Do visitor (*matrix.Dense) are streamed without
//     per-cell error checks; others are read through At.
//
// Errors:
//   - ErrNilInput for a nil source; any error returned by src.At, wrapped.
//     On error m keeps its previous contents.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols/64).
func (m *Matrix) AssignNumeric(src Numeric) error {
	if src == nil {
		return fmt.Errorf("%s.AssignNumeric: %w", nodeMatrix, ErrNilInput)
	}
	rows, cols := src.Rows(), src.Cols()
	m.checkFixed(ctxAssign, rows, cols)

	tmp := New(rows, cols)
	if d, ok := src.(numericVisitor); ok {
		d.Do(func(i, j int, v float64) bool {
			if v != 0 {
				tmp.Set(i, j)
			}

			return true
		})
		m.rows, m.cols, m.data = tmp.rows, tmp.cols, tmp.data

		return nil
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return fmt.Errorf("%s.AssignNumeric(%d,%d): %w", nodeMatrix, i, j, err)
			}
			if v != 0 {
				tmp.Set(i, j)
			}
		}
	}
	m.rows, m.cols, m.data = tmp.rows, tmp.cols, tmp.data

	return nil
}

// Clone returns an independent copy with the same shape policy.
func (m *Matrix) Clone() *Matrix {
	cp := make([]BitPack, m.Bitpacks())
	copy(cp, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, fixRows: m.fixRows, fixCols: m.fixCols, data: cp}
}

// Row returns a writable view of row i.
func (m *Matrix) Row(i int) BlockView { return Row(m, i) }

// Col returns a writable view of column j.
func (m *Matrix) Col(j int) BlockView { return Col(m, j) }

// Block returns a writable rows×cols view starting at (r0,c0).
func (m *Matrix) Block(r0, c0, rows, cols int) BlockView { return Block(m, r0, c0, rows, cols) }

// String renders the matrix as rows of '0'/'1' separated by newlines.
func (m *Matrix) String() string { return Format(m) }
