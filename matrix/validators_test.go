// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvbits/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShapeView checks the Shaped form against a view.
func TestValidateSameShapeView(t *testing.T) {
	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	v, err := m.View(0, 0, 2, 4)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateSameShape(m, v), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(v, v))
}

// TestValidateFinite checks the scan on a Dense with the policy off.
func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	m.SetValidateNaNInf(false)
	require.NoError(t, m.Set(1, 0, math.Inf(1)))
	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
