// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards shared by mask code:
//    nil checks, shape agreement and finiteness.
//  - Return sentinels wrapped with the validator tag so errors.Is keeps working.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//
// AI-Hints:
//  - ValidateSameShape takes Shaped, so a numeric matrix can be checked
//    against a binary mask without converting either.

package matrix

import "fmt"

// Shaped is anything with a row and column count.
type Shaped interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is neither a nil interface nor a nil *Dense.
//
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
// AI-Hints: use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d vs %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d vs %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m row-major and reports the first NaN or ±Inf.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates), or an At error.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if isNonFinite(v) {
				return fmt.Errorf("ValidateFinite(%d,%d): %w", k/d.c, k%d.c, ErrNaNInf)
			}
		}

		return nil
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return fmt.Errorf("ValidateFinite(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}
