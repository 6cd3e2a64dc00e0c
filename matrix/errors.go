// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with an
// operation tag) and tests match them via errors.Is. No operation panics on
// user-triggered conditions; panics are reserved for invalid Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap the sentinel once with their tag ("Mul: matrix: shape mismatch"), so
// callers still match with errors.Is.

var (
	// ErrInvalidSize is returned when a negative length or dimension is requested.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrIndexOutOfBounds indicates an element, row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes: element-wise operands
	// of different shape, Mul with a.Cols != b.Rows, or a row/column push of the wrong length.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrRaggedShape is returned when literal rows have unequal lengths.
	ErrRaggedShape = errors.New("matrix: ragged rows")

	// ErrNotSquare signals that a square matrix was required (Pow, Inverse).
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidExponent is returned by Pow for negative exponents.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrDivisionByZero is returned when a divisor element or scalar is zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrSingularMatrix is returned when elimination finds no usable pivot.
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrEmptyCollection is returned by Pop/PopRow/PopCol on an empty container.
	ErrEmptyCollection = errors.New("matrix: empty collection")

	// ErrNaNInf signals a NaN or ±Inf value at an ingestion point while the
	// finite-only policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix or *Vector was used.
	ErrNilMatrix = errors.New("matrix: nil operand")
)

// Operation tags for uniform error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opHadamard  = "Hadamard"
	opScalar    = "Scalar"
	opPow       = "Pow"
	opInverse   = "Inverse"
	opTranspose = "Transpose"
	opMulVec    = "MulVec"
	opVecMul    = "VecMul"
	opDot       = "Dot"
	opPushRow   = "PushRow"
	opPopRow    = "PopRow"
	opPushCol   = "PushCol"
	opPopCol    = "PopCol"
	opRow       = "Row"
	opCol       = "Col"
	opNew       = "New"
	opFromRows  = "FromRows"
	opPush      = "Push"
	opPop       = "Pop"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches a method context and coordinates to err.
func indexErrorf(typ, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, i, j, err)
}
