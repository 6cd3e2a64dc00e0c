// Package matrix is the arithmetic and storage engine of crunum: growable
// float64 vectors and row-major matrices.
//
// The matrix package provides:
//
//   - Vector with bounds-checked At/Set and amortized O(1) Push/Pop.
//   - Matrix with bounds-checked At/Set, PushRow/PopRow reusing the same
//     growth discipline, and PushCol/PopCol.
//   - Broadcast arithmetic: Add, Sub, Div, Hadamard between equally shaped
//     matrices; AddScalar, SubScalar, MulScalar, DivScalar; and the
//     scalar-left functions ScalarAdd, ScalarSub, ScalarMul, ScalarDiv.
//   - Linear algebra: Mul (true product), Pow (non-negative integer power),
//     Inverse (Gauss-Jordan with partial pivoting), Transpose, MulVec, VecMul.
//   - Tolerant equality against a scalar or a same-kind value, and
//     all-element ordering predicates.
//
// Mul is the linear-algebra product while Div is always element-wise, so
// A.Div(A) is a matrix of ones and never the identity. Use Inverse for the
// matrix "division" A·B⁻¹.
//
// Every failure is a sentinel from errors.go, wrapped with the operation name
// and matched with errors.Is. Arithmetic never mutates its operands; mutators
// (Set, Push, Pop, PushRow, PopRow, PushCol, PopCol) either succeed or leave
// the instance unchanged. Instances carry no locks: serialize mutation
// externally when sharing across goroutines.
//
// See the examples in this package for usage patterns.
package matrix
