// SPDX-License-Identifier: MIT
package converters_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/crunum/converters"
	"github.com/katalvlaran/crunum/matrix"
	"github.com/stretchr/testify/require"
)

// TestSolveSparse_Known solves a small system with a hand-checked answer.
func TestSolveSparse_Known(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	require.NoError(t, err)
	// x = (1, 2, 3) ⇒ b = A·x
	b, err := matrix.VectorFromSlice([]float64{6, 10, 8})
	require.NoError(t, err)

	x, err := converters.SolveSparse(a, b)
	require.NoError(t, err)
	require.Truef(t, x.EqualWithin(mustVec(t, 1, 2, 3), 1e-9), "got %s", x)
}

// TestSolveSparse_AgreesWithInverse cross-checks against Inverse·b.
func TestSolveSparse_AgreesWithInverse(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		a, err := matrix.RandInit(6, 6, matrix.WithSeed(seed), matrix.WithRange(-1, 1))
		require.NoError(t, err)
		shift, err := matrix.Identity(6)
		require.NoError(t, err)
		shift, err = shift.MulScalar(6)
		require.NoError(t, err)
		a, err = a.Add(shift)
		require.NoError(t, err)
		b, err := matrix.RandVector(6, matrix.WithSeed(seed+100))
		require.NoError(t, err)

		got, err := converters.SolveSparse(a, b)
		require.NoError(t, err)

		inv, err := a.Inverse()
		require.NoError(t, err)
		want, err := inv.MulVec(b)
		require.NoError(t, err)
		require.Truef(t, got.EqualWithin(want, 1e-9), "seed %d\nwant %s\ngot %s", seed, want, got)
	}
}

// TestSolveSparse_PivotNeeded has a zero in the leading diagonal slot.
func TestSolveSparse_PivotNeeded(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	x, err := converters.SolveSparse(a, mustVec(t, 3, 7))
	require.NoError(t, err)
	require.True(t, x.EqualWithin(mustVec(t, 7, 3), 1e-12))
}

// TestSolveSparse_Errors covers shape, nil and singular inputs.
func TestSolveSparse_Errors(t *testing.T) {
	rect, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	_, err = converters.SolveSparse(rect, mustVec(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	sq, err := matrix.Identity(2)
	require.NoError(t, err)
	_, err = converters.SolveSparse(sq, mustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = converters.SolveSparse(sq, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewMatrix(0, 0)
	require.NoError(t, err)
	_, err = converters.ToSparse(empty)
	require.ErrorIs(t, err, converters.ErrEmptyMatrix)

	sing, err := matrix.FromRows([][]float64{{1, 2}, {0, 0}})
	require.NoError(t, err)
	_, err = converters.SolveSparse(sing, mustVec(t, 1, 1))
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrSingularMatrix) || errors.Is(err, matrix.ErrNaNInf), "got %v", err)
}

func mustVec(t *testing.T, xs ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.VectorFromSlice(xs)
	require.NoError(t, err)
	return v
}
