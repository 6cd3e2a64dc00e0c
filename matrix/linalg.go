// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels: true product, integer power,
// Gauss-Jordan inverse, transpose and matrix–vector products.
//
// Purpose:
//   - Canonical kernels on the flat row-major buffer; every result is a fresh
//     allocation and operands are never mutated.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels with op tags.
//   - Accumulation is plain float64 summation in fixed loop order (no
//     compensated summation), so identical inputs give identical bits.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for inner products.
const ZeroSum = 0.0

// Mul performs standard matrix multiplication C = m × o.
// Implementation:
//   - Stage 1: Validate operands (not nil) and inner dimensions (m.Cols == o.Rows).
//   - Stage 2: i→k→j over row-major strides; every term is accumulated,
//     so non-finite operands propagate as under IEEE 754.
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C.
//
// Inputs:
//   - m: left matrix with shape (r × n).
//   - o: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new C with shape (r × c), policy inherited from m.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		ar, ac, br, bc := dims(m, o)
		return nil, opErrorf(opMul, fmt.Errorf("%dx%d * %dx%d: %w", ar, ac, br, bc, err))
	}

	return mulDense(m, o), nil
}

// dims flattens the two operand shapes for error messages; nil reads as 0x0.
func dims(a, b *Matrix) (int, int, int, int) {
	var ar, ac, br, bc int
	if a != nil {
		ar, ac = a.r, a.c
	}
	if b != nil {
		br, bc = b.r, b.c
	}

	return ar, ac, br, bc
}

// mulDense multiplies without validation (callers guarantee a.c == b.r).
// Zero entries are not skipped, so 0·Inf and 0·NaN still yield NaN.
func mulDense(a, b *Matrix) *Matrix {
	aRows, aCols, bCols := a.r, a.c, b.c
	res := newMatrixLike(aRows, bCols, a.pol)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Pow returns m raised to the non-negative integer power k.
// MAIN DESCRIPTION:
//   - m^0 is the identity of matching size; m^k is the k-fold product.
//
// Implementation:
//   - Stage 1: ValidateSquare, then reject k < 0.
//   - Stage 2: square-and-multiply over the bits of k (O(log k) products).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrInvalidExponent.
//
// Complexity:
//   - Time O(n^3 log k), Space O(n^2).
//
// Notes:
//   - For integer-valued inputs the result equals naive repeated
//     multiplication exactly; otherwise it agrees within rounding.
func (m *Matrix) Pow(k int) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opPow, err)
	}
	if k < 0 {
		return nil, opErrorf(opPow, fmt.Errorf("exponent %d: %w", k, ErrInvalidExponent))
	}
	if k == 0 {
		id := newMatrixLike(m.r, m.r, m.pol)
		for i := 0; i < m.r; i++ {
			id.data[i*m.r+i] = 1
		}
		return id, nil
	}

	var result *Matrix
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result == nil {
				result = base.Clone()
			} else {
				result = mulDense(result, base)
			}
		}
		k >>= 1
		if k > 0 {
			base = mulDense(base, base)
		}
	}

	return result, nil
}

// Inverse computes m⁻¹ by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduces a working copy of m to the identity while applying the same row
//     operations to an identity matrix, which becomes the inverse.
//
// Implementation:
//   - Stage 1: ValidateSquare; resolve pivot tolerance from opts.
//   - Stage 2: for each column, pick the row (at or below the diagonal) with
//     the largest |value|; if that magnitude is <= tol, fail ErrSingularMatrix.
//   - Stage 3: swap it into place, normalize the pivot row, eliminate the
//     column from every other row (both work and result).
//
// Behavior highlights:
//   - Input is read-only; the working copy is private to the call.
//   - Partial pivoting bounds element growth.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingularMatrix.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	tol := gatherOptions(opts...).pivotTol

	n := m.r
	work := m.Clone().data // private working copy
	inv := newMatrixLike(n, n, m.pol)
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}

	var (
		col, row, j, p int
		best, v, f, pv float64
		rowCol, rowRow int
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: largest magnitude in column col, rows col..n-1.
		p, best = col, math.Abs(work[col*n+col])
		for row = col + 1; row < n; row++ {
			if v = math.Abs(work[row*n+col]); v > best {
				p, best = row, v
			}
		}
		if best <= tol {
			return nil, opErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingularMatrix))
		}
		if p != col {
			swapRows(work, n, p, col)
			swapRows(inv.data, n, p, col)
		}

		// Normalize the pivot row.
		rowCol = col * n
		pv = work[rowCol+col]
		for j = 0; j < n; j++ {
			work[rowCol+j] /= pv
			inv.data[rowCol+j] /= pv
		}

		// Eliminate column col from every other row.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			rowRow = row * n
			f = work[rowRow+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				work[rowRow+j] -= f * work[rowCol+j]
				inv.data[rowRow+j] -= f * inv.data[rowCol+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b of an n-column row-major buffer.
func swapRows(data []float64, n, a, b int) {
	ra, rb := a*n, b*n
	for j := 0; j < n; j++ {
		data[ra+j], data[rb+j] = data[rb+j], data[ra+j]
	}
}

// Transpose returns a new cols×rows matrix with mᵀ[j,i] = m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func (m *Matrix) Transpose() (*Matrix, error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}
	out := newMatrixLike(m.c, m.r, m.pol)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// MulVec returns y = m·x with len(x) == Cols(); len(y) == Rows().
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func (m *Matrix) MulVec(x *Vector) (*Vector, error) {
	if m == nil || x == nil {
		return nil, opErrorf(opMulVec, ErrNilMatrix)
	}
	if x.n != m.c {
		return nil, opErrorf(opMulVec, ErrShapeMismatch)
	}
	y := newVectorLike(m.r, m.pol)
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = ZeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x.data[j]
		}
		y.data[i] = sum
	}

	return y, nil
}

// VecMul returns yᵀ = xᵀ·m with len(x) == Rows(); len(y) == Cols().
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix) VecMul(x *Vector) (*Vector, error) {
	if m == nil || x == nil {
		return nil, opErrorf(opVecMul, ErrNilMatrix)
	}
	if x.n != m.r {
		return nil, opErrorf(opVecMul, ErrShapeMismatch)
	}
	y := newVectorLike(m.c, m.pol)
	var i, j, base int
	var xi float64
	for i = 0; i < m.r; i++ {
		xi = x.data[i]
		base = i * m.c
		for j = 0; j < m.c; j++ {
			y.data[j] += xi * m.data[base+j]
		}
	}

	return y, nil
}
