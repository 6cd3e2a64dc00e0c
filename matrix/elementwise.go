// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast arithmetic between Matrix⊕Matrix, Matrix⊕scalar and scalar⊕Matrix.
//   - Private flat-slice kernels (ew*) shared with the Vector operations so the
//     tight loops exist once.
//
// Semantics (kept deliberately asymmetric):
//   - Add/Sub/Div between matrices are element-wise and need identical shapes.
//   - Mul between matrices is the TRUE product (linalg.go); the element-wise
//     product is Hadamard.
//   - Div is always element-wise: A.Div(A) is all ones, never the identity.
//   - Scalar-left forms are package functions so the call reads in operand
//     order: ScalarSub(c, A)[i,j] == c - A[i,j].
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 over the row-major buffer; O(r*c) time and space.
//   - All validation (shape, zero divisors) runs before the result is allocated,
//     so a failed call leaves no partial state anywhere.

package matrix

// binop is an element combiner used by the ew* kernels.
type binop func(x, y float64) float64

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

// flip swaps operand order: flip(f)(x, s) == f(s, x).
func flip(f binop) binop { return func(x, y float64) float64 { return f(y, x) } }

// ewSlices computes dst[k] = f(a[k], b[k]). len(dst)==len(a)==len(b) is the caller's job.
func ewSlices(dst, a, b []float64, f binop) {
	for k := range dst {
		dst[k] = f(a[k], b[k])
	}
}

// ewSliceScalar computes dst[k] = f(a[k], s).
func ewSliceScalar(dst, a []float64, s float64, f binop) {
	for k := range dst {
		dst[k] = f(a[k], s)
	}
}

// ewMatrix is the Matrix⊕Matrix kernel: shape check, then one flat pass.
func ewMatrix(a, b *Matrix, f binop, tag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := newMatrixLike(a.r, a.c, a.pol)
	ewSlices(out.data, a.values(), b.values(), f)

	return out, nil
}

// ewMatrixScalar is the Matrix⊕scalar kernel.
func ewMatrixScalar(m *Matrix, s float64, f binop, tag string) (*Matrix, error) {
	if m == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	out := newMatrixLike(m.r, m.c, m.pol)
	ewSliceScalar(out.data, m.values(), s, f)

	return out, nil
}

// Add returns the element-wise sum m + o.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return ewMatrix(m, o, add, opAdd) }

// Sub returns the element-wise difference m - o.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return ewMatrix(m, o, sub, opSub) }

// Hadamard returns the element-wise product m ∘ o.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix) Hadamard(o *Matrix) (*Matrix, error) { return ewMatrix(m, o, mul, opHadamard) }

// Div returns the element-wise quotient m / o.
// MAIN DESCRIPTION:
//   - Element-wise even for two matrices: m.Div(m) is all ones.
//
// Implementation:
//   - Stage 1: NotNil → SameShape.
//   - Stage 2: scan o for exact zeros before allocating.
//   - Stage 3: single flat pass.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrDivisionByZero.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Div(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, opErrorf(opDiv, err)
	}
	if err := validateNoZero(o.values()); err != nil {
		return nil, opErrorf(opDiv, err)
	}

	return ewMatrix(m, o, div, opDiv)
}

// AddScalar returns m[i,j] + s for every element.
func (m *Matrix) AddScalar(s float64) (*Matrix, error) {
	return ewMatrixScalar(m, s, add, opScalar)
}

// SubScalar returns m[i,j] - s for every element.
func (m *Matrix) SubScalar(s float64) (*Matrix, error) {
	return ewMatrixScalar(m, s, sub, opScalar)
}

// MulScalar returns m[i,j] * s for every element.
func (m *Matrix) MulScalar(s float64) (*Matrix, error) {
	return ewMatrixScalar(m, s, mul, opScalar)
}

// DivScalar returns m[i,j] / s for every element.
// Errors: ErrDivisionByZero when s == 0.
func (m *Matrix) DivScalar(s float64) (*Matrix, error) {
	if s == 0 {
		return nil, opErrorf(opScalar, ErrDivisionByZero)
	}

	return ewMatrixScalar(m, s, div, opScalar)
}

// ScalarAdd returns s + m[i,j] (same values as m.AddScalar(s)).
func ScalarAdd(s float64, m *Matrix) (*Matrix, error) {
	return ewMatrixScalar(m, s, flip(add), opScalar)
}

// ScalarSub returns s - m[i,j]; note the operand order.
func ScalarSub(s float64, m *Matrix) (*Matrix, error) {
	return ewMatrixScalar(m, s, flip(sub), opScalar)
}

// ScalarMul returns s * m[i,j] (same values as m.MulScalar(s)).
func ScalarMul(s float64, m *Matrix) (*Matrix, error) {
	return ewMatrixScalar(m, s, flip(mul), opScalar)
}

// ScalarDiv returns s / m[i,j].
// Errors: ErrNilMatrix, ErrDivisionByZero when any element of m is 0.
func ScalarDiv(s float64, m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, opErrorf(opScalar, ErrNilMatrix)
	}
	if err := validateNoZero(m.values()); err != nil {
		return nil, opErrorf(opScalar, err)
	}

	return ewMatrixScalar(m, s, flip(div), opScalar)
}
