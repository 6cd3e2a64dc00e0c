// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/crunum/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toDense mirrors m into a gonum Dense via the row-major buffer.
func toDense(m *matrix.Matrix) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Raw())
}

// requireMatchesDense compares element-wise with a mixed tolerance.
func requireMatchesDense(t *testing.T, want *mat.Dense, got *matrix.Matrix, tol float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	require.Truef(t, mat.EqualApprox(want, toDense(got), tol), "want\n%v\ngot\n%s", mat.Formatted(want), got)
}

// TestOracle_MulAgainstGonum cross-checks the product on seeded rectangular inputs.
func TestOracle_MulAgainstGonum(t *testing.T) {
	shapes := [][3]int{{1, 1, 1}, {3, 4, 5}, {7, 2, 6}, {16, 16, 16}}
	for i, s := range shapes {
		a := MustRand(t, s[0], s[1], int64(10+i), -5, 5)
		b := MustRand(t, s[1], s[2], int64(20+i), -5, 5)

		got, err := a.Mul(b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(toDense(a), toDense(b))
		requireMatchesDense(t, &want, got, 1e-12)
	}
}

// TestOracle_InverseAgainstGonum cross-checks Gauss-Jordan against LU-based inversion.
func TestOracle_InverseAgainstGonum(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		a := MustRand(t, n, n, int64(n), -1, 1)
		shift, err := MustIdentity(t, n).MulScalar(float64(n))
		require.NoError(t, err)
		a, err = a.Add(shift)
		require.NoError(t, err)

		got, err := a.Inverse()
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(toDense(a)))
		requireMatchesDense(t, &want, got, 1e-9)
	}
}

// TestOracle_PowAgainstGonum cross-checks square-and-multiply against gonum's Pow.
func TestOracle_PowAgainstGonum(t *testing.T) {
	a := MustRand(t, 4, 4, 77, -1, 1)
	for _, k := range []int{0, 1, 2, 3, 7, 10} {
		got, err := a.Pow(k)
		require.NoError(t, err)

		var want mat.Dense
		want.Pow(toDense(a), k)
		requireMatchesDense(t, &want, got, 1e-9)
	}
}

// TestOracle_TransposeAgainstGonum checks Transpose against mat.Dense.T.
func TestOracle_TransposeAgainstGonum(t *testing.T) {
	a := MustRand(t, 3, 5, 3, 0, 1)
	got, err := a.Transpose()
	require.NoError(t, err)
	requireMatchesDense(t, mat.DenseCopyOf(toDense(a).T()), got, 0)
}
