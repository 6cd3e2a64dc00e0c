// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures so each test states only what it checks.
//   • Helpers fail fast via t.Fatalf / require so call sites stay one line.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/crunum/matrix"
	"github.com/stretchr/testify/require"
)

// tb is the subset of testing.TB the helpers need (tests and benchmarks).
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MustRows BUILDS a matrix from a literal or fails the test.
func MustRows(t tb, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustVector BUILDS a vector from a literal or fails the test.
func MustVector(t tb, xs []float64, opts ...matrix.Option) *matrix.Vector {
	t.Helper()
	v, err := matrix.VectorFromSlice(xs, opts...)
	if err != nil {
		t.Fatalf("VectorFromSlice(%v): %v", xs, err)
	}

	return v
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t tb, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t tb, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustRand BUILDS a seeded r×c matrix with entries in [lo, hi).
func MustRand(t tb, r, c int, seed int64, lo, hi float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.RandInit(r, c, matrix.WithSeed(seed), matrix.WithRange(lo, hi))
	if err != nil {
		t.Fatalf("RandInit(%d,%d): %v", r, c, err)
	}

	return m
}

// requireRows asserts m equals the literal within the default tolerance,
// printing both on failure.
func requireRows(t *testing.T, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Truef(t, m.EqualRows(want), "want %v\ngot %s", want, m)
}
