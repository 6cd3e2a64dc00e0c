// SPDX-License-Identifier: MIT
// Package converters - gonum/mat adapters.
//
// Layout:
//   - crunum and gonum are both row-major, so ToGonum hands Raw() straight to
//     mat.NewDense. The reverse direction walks Dims()/At() so any mat.Matrix
//     (transposed views, symmetric, triangular) is accepted.
//
// Errors:
//   - ErrEmptyMatrix for zero-area inputs (mat.NewDense panics on them).
//   - matrix.ErrNilMatrix for nil inputs.
//   - Ingestion errors of the target crunum instance (matrix.ErrNaNInf) pass through.

package converters

import (
	"fmt"

	"github.com/katalvlaran/crunum/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
func ToGonum(m *matrix.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrEmptyMatrix)
	}

	return mat.NewDense(r, c, m.Raw()), nil
}

// FromGonum copies any gonum matrix into a new crunum Matrix.
// opts configure the result exactly as for matrix.NewMatrix.
//
// Complexity: O(r*c) At calls on src.
func FromGonum(src mat.Matrix, opts ...matrix.Option) (*matrix.Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := matrix.NewMatrix(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return m, nil
}

// VectorToGonum copies v into a new *mat.VecDense.
func VectorToGonum(v *matrix.Vector) (*mat.VecDense, error) {
	if v == nil {
		return nil, fmt.Errorf("VectorToGonum: %w", matrix.ErrNilMatrix)
	}
	if v.Len() == 0 {
		return nil, fmt.Errorf("VectorToGonum: %w", ErrEmptyMatrix)
	}

	return mat.NewVecDense(v.Len(), v.Slice()), nil
}

// VectorFromGonum copies any gonum vector into a new crunum Vector.
func VectorFromGonum(src mat.Vector, opts ...matrix.Option) (*matrix.Vector, error) {
	if src == nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", matrix.ErrNilMatrix)
	}
	xs := make([]float64, src.Len())
	for i := range xs {
		xs[i] = src.AtVec(i)
	}
	v, err := matrix.VectorFromSlice(xs, opts...)
	if err != nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", err)
	}

	return v, nil
}
