// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/crunum/matrix"
)

// Literal syntax: rows separated by ';', values by ','. Whitespace is ignored.
//
//	"1,2;3,4"  → [[1 2] [3 4]]
//	"1, 2, 3"  → one row (matrix) or three values (vector)
const (
	rowSep   = ";"
	valueSep = ","
)

var errArgCount = errors.New("wrong number of arguments")

// parseMatrix turns a literal into a Matrix. An empty literal is a 0×0 matrix.
func parseMatrix(lit string) (*matrix.Matrix, error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return matrix.NewMatrix(0, 0)
	}
	parts := strings.Split(lit, rowSep)
	rows := make([][]float64, len(parts))
	for i, p := range parts {
		row, err := parseValues(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}

	return matrix.FromRows(rows)
}

// parseVector turns "a,b,c" into a Vector.
func parseVector(lit string) (*matrix.Vector, error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return matrix.NewVector(0)
	}
	xs, err := parseValues(lit)
	if err != nil {
		return nil, err
	}

	return matrix.VectorFromSlice(xs)
}

func parseValues(s string) ([]float64, error) {
	fields := strings.Split(s, valueSep)
	out := make([]float64, len(fields))
	for j, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", j, err)
		}
		out[j] = x
	}

	return out, nil
}

// parseCount parses an integer argument such as a size or exponent.
// Negative values pass through; the matrix constructor or Pow rejects them
// with ErrInvalidSize or ErrInvalidExponent.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return n, nil
}
