// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between crunum matrices and
// popular Go linear-algebra libraries:
//   - gonum.org/v1/gonum/mat (dense matrices and vectors)
//   - github.com/edp1096/sparse (sparse LU factorization and solve)
//
// Every adapter copies: neither side ever aliases the other's storage.
// Use converters to hand a crunum matrix to gonum routines (eigen, SVD, ...)
// or to solve A·x = b without forming A⁻¹.
package converters
