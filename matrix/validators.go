// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for operand checks shared by the kernels.
//  - Return plain sentinels (no wrapping) so call sites wrap uniformly with
//    their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure; shape checks are O(1), zero scans are O(n) and
//    allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

// ValidateNotNil ensures every matrix operand is non-nil.
// Returns ErrNilMatrix on the first nil.
func ValidateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a,b) → equal rows and cols.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a,b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
// Errors: ErrNilMatrix, ErrNotSquare.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNotSquare
	}

	return nil
}

// ValidateSameLen – Composite: NotNil(a,b) → equal lengths.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateSameLen(a, b *Vector) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.n != b.n {
		return ErrShapeMismatch
	}

	return nil
}

// validateNoZero returns ErrDivisionByZero when any divisor element is exactly 0.
// Time: O(n). Space: O(1).
func validateNoZero(divisors []float64) error {
	for _, d := range divisors {
		if d == 0 {
			return ErrDivisionByZero
		}
	}

	return nil
}

// validateAdmitted returns ErrNaNInf when p rejects any value in xs.
func validateAdmitted(p policy, xs []float64) error {
	if !p.validateNaNInf {
		return nil
	}
	for _, x := range xs {
		if isNonFinite(x) {
			return ErrNaNInf
		}
	}

	return nil
}
