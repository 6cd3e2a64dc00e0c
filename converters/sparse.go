// SPDX-License-Identifier: MIT
// Package converters - sparse LU adapters (github.com/edp1096/sparse).
//
// Indexing:
//   - sparse is 1-based: element (i,j) of a crunum matrix lives at (i+1, j+1),
//     and right-hand sides/solutions are slices of length n+1 with slot 0 unused.
//
// Ownership:
//   - ToSparse returns a freshly created *sparse.Matrix; the caller must call
//     Destroy on it. SolveSparse manages its own instance.

package converters

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/katalvlaran/crunum/matrix"
)

// sparseConfig is the real-valued configuration used for every instance.
func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// ToSparse loads a square matrix into a new sparse matrix.
// MAIN DESCRIPTION:
//   - Only non-zero entries are stored, plus the full diagonal so the
//     factorization sees every pivot slot.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotSquare, ErrEmptyMatrix (0×0).
//   - Allocation failures reported by sparse.Create.
//
// Complexity:
//   - O(n^2) scan, O(nnz) element inserts.
func ToSparse(m *matrix.Matrix) (*sparse.Matrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("ToSparse: %w", err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, fmt.Errorf("ToSparse: %w", ErrEmptyMatrix)
	}

	sm, err := sparse.Create(int64(n), sparseConfig())
	if err != nil {
		return nil, fmt.Errorf("ToSparse: create %dx%d: %w", n, n, err)
	}
	raw := m.Raw()
	var i, j int
	var x float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = raw[i*n+j]
			if x == 0 && i != j {
				continue
			}
			sm.GetElement(int64(i+1), int64(j+1)).Real += x
		}
	}

	return sm, nil
}

// SolveSparse solves m·x = b by sparse LU factorization.
// Implementation:
//   - Stage 1: validate shapes (m square, len(b) == Rows()).
//   - Stage 2: ToSparse, Factor, Solve on a 1-based right-hand side.
//   - Stage 3: copy the solution back into a 0-based Vector.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotSquare, matrix.ErrShapeMismatch, ErrEmptyMatrix.
//   - matrix.ErrSingularMatrix when factorization fails.
//
// Notes:
//   - The result inherits the default numeric policy; it is a plain Vector.
func SolveSparse(m *matrix.Matrix, b *matrix.Vector) (*matrix.Vector, error) {
	if b == nil {
		return nil, fmt.Errorf("SolveSparse: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("SolveSparse: %w", err)
	}
	n := m.Rows()
	if b.Len() != n {
		return nil, fmt.Errorf("SolveSparse: rhs of %d values for %d rows: %w", b.Len(), n, matrix.ErrShapeMismatch)
	}

	sm, err := ToSparse(m)
	if err != nil {
		return nil, fmt.Errorf("SolveSparse: %w", err)
	}
	defer sm.Destroy()

	if err = sm.Factor(); err != nil {
		return nil, fmt.Errorf("SolveSparse: factor: %v: %w", err, matrix.ErrSingularMatrix)
	}

	rhs := make([]float64, n+1) // 1-based
	copy(rhs[1:], b.Slice())
	sol, err := sm.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("SolveSparse: solve: %v: %w", err, matrix.ErrSingularMatrix)
	}
	if len(sol) < n+1 {
		return nil, fmt.Errorf("SolveSparse: solution of %d slots for %d unknowns: %w", len(sol), n, matrix.ErrShapeMismatch)
	}

	x, err := matrix.VectorFromSlice(sol[1 : n+1])
	if err != nil {
		return nil, fmt.Errorf("SolveSparse: %w", err)
	}

	return x, nil
}
