// SPDX-License-Identifier: MIT

// Package crunum is a small numeric engine: dynamically resizable float64
// vectors and row-major matrices with element-wise and broadcast arithmetic,
// true matrix products, integer powers and Gauss-Jordan inversion.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      Vector, Matrix, arithmetic, linear algebra, row/column editing
//	converters/  adapters to gonum/mat and to the edp1096/sparse LU solver
//	cmd/crunum/  command-line front end (identity, rand, power, inverse, mul, solve)
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := a.Inverse()
//	fmt.Println(inv)
//	// [
//	// [-2.00, 1.00],
//	// [1.50, -0.50]
//	// ]
//
// Division is always element-wise: a.Div(a) is a matrix of ones. Use Inverse
// (or converters.SolveSparse) when the linear-algebra quotient is meant.
//
//	go get github.com/katalvlaran/crunum/matrix
package crunum

// Version is the release reported by the crunum command.
const Version = "0.3.0"
