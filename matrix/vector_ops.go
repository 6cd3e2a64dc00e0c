// SPDX-License-Identifier: MIT

// Package matrix - Vector arithmetic.
// Same rules as the Matrix element-wise family: equal lengths, fresh results,
// zero divisors rejected before allocation. Kernels live in elementwise.go.

package matrix

func ewVector(a, b *Vector, f binop, tag string) (*Vector, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := newVectorLike(a.n, a.pol)
	ewSlices(out.data, a.values(), b.values(), f)

	return out, nil
}

func ewVectorScalar(v *Vector, s float64, f binop, tag string) (*Vector, error) {
	if v == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	out := newVectorLike(v.n, v.pol)
	ewSliceScalar(out.data, v.values(), s, f)

	return out, nil
}

// Add returns v + o element-wise.
func (v *Vector) Add(o *Vector) (*Vector, error) { return ewVector(v, o, add, opAdd) }

// Sub returns v - o element-wise.
func (v *Vector) Sub(o *Vector) (*Vector, error) { return ewVector(v, o, sub, opSub) }

// Mul returns the element-wise product v ∘ o.
func (v *Vector) Mul(o *Vector) (*Vector, error) { return ewVector(v, o, mul, opMul) }

// Div returns v / o element-wise.
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrDivisionByZero.
func (v *Vector) Div(o *Vector) (*Vector, error) {
	if err := ValidateSameLen(v, o); err != nil {
		return nil, opErrorf(opDiv, err)
	}
	if err := validateNoZero(o.values()); err != nil {
		return nil, opErrorf(opDiv, err)
	}

	return ewVector(v, o, div, opDiv)
}

// AddScalar returns v[i] + s.
func (v *Vector) AddScalar(s float64) (*Vector, error) {
	return ewVectorScalar(v, s, add, opScalar)
}

// SubScalar returns v[i] - s.
func (v *Vector) SubScalar(s float64) (*Vector, error) {
	return ewVectorScalar(v, s, sub, opScalar)
}

// MulScalar returns v[i] * s.
func (v *Vector) MulScalar(s float64) (*Vector, error) {
	return ewVectorScalar(v, s, mul, opScalar)
}

// DivScalar returns v[i] / s. Errors: ErrDivisionByZero when s == 0.
func (v *Vector) DivScalar(s float64) (*Vector, error) {
	if s == 0 {
		return nil, opErrorf(opScalar, ErrDivisionByZero)
	}

	return ewVectorScalar(v, s, div, opScalar)
}

// ScalarSubVector returns s - v[i].
func ScalarSubVector(s float64, v *Vector) (*Vector, error) {
	return ewVectorScalar(v, s, flip(sub), opScalar)
}

// ScalarDivVector returns s / v[i].
// Errors: ErrDivisionByZero when any element of v is 0.
func ScalarDivVector(s float64, v *Vector) (*Vector, error) {
	if v == nil {
		return nil, opErrorf(opScalar, ErrNilMatrix)
	}
	if err := validateNoZero(v.values()); err != nil {
		return nil, opErrorf(opScalar, err)
	}

	return ewVectorScalar(v, s, flip(div), opScalar)
}

// Dot returns Σ v[i]*o[i].
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := ValidateSameLen(v, o); err != nil {
		return 0, opErrorf(opDot, err)
	}
	sum := 0.0
	for i, x := range v.values() {
		sum += x * o.data[i]
	}

	return sum, nil
}
