// SPDX-License-Identifier: MIT

// Package binmat - glue between binary masks and numeric matrices.
//
// FromNumeric (factories.go) turns numbers into a mask; the functions here go
// the other way: they apply a mask to numbers or render a mask as numbers.

package binmat

import (
	"fmt"

	"github.com/katalvlaran/lvbits/matrix"
)

const ctxSelect = "Select"

// Select returns a copy of src with every entry zeroed where mask is false.
// MAIN DESCRIPTION:
//   - Dense masking: out(i,j) = src(i,j) if mask(i,j), else 0.
//
// Implementation:
//   - Stage 1: validate src (nil, finite) and shapes via the matrix validators.
//   - Stage 2: realize mask once so each cell read is O(1).
//   - Stage 3: clone src (flat copy for *matrix.Dense, At loop otherwise).
//   - Stage 4: Apply a row-major pass that zeroes unselected entries.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil src.
//   - ErrDimensionMismatch (also matching matrix.ErrDimensionMismatch) when shapes differ.
//   - matrix.ErrNaNInf when src holds NaN or ±Inf (a Dense with its policy off).
//   - Errors from src.At while copying a non-Dense source.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Select(mask Expr, src matrix.Matrix) (*matrix.Dense, error) {
	if mask == nil {
		return nil, fmt.Errorf("%s: %w", ctxSelect, ErrNilInput)
	}
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSelect, err)
	}
	if err := matrix.ValidateSameShape(mask, src); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ctxSelect, ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateFinite(src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSelect, err)
	}

	m := realize(mask)
	out, err := cloneDense(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSelect, err)
	}
	err = out.Apply(func(i, j int, v float64) float64 {
		if m.At(i, j) {
			return v
		}

		return 0
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSelect, err)
	}

	return out, nil
}

// ToDense renders x as a numeric matrix of 1.0 (true) and 0.0 (false).
// Complexity: O(rows*cols).
func ToDense(x Expr) (*matrix.Dense, error) {
	m := realize(x)
	out, err := matrix.NewDense(m.rows, m.cols)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	err = out.Apply(func(i, j int, _ float64) float64 {
		if m.At(i, j) {
			return 1
		}

		return 0
	})
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}

	return out, nil
}

// realize returns x itself when it is already a *Matrix, else a realized copy.
func realize(x Expr) *Matrix {
	if m, ok := x.(*Matrix); ok {
		return m
	}

	return FromExpr(x)
}

// cloneDense copies src into a fresh *matrix.Dense.
func cloneDense(src matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := src.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	out, err := matrix.NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
