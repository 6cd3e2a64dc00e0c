// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/crunum"
	"github.com/katalvlaran/crunum/matrix"
	"github.com/stretchr/testify/require"
)

// run executes the app with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"crunum"}, args...))
	return out.String(), err
}

func TestCommands_Output(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"identity", []string{"identity", "2"}, "[\n[1.00, 0.00],\n[0.00, 1.00]\n]\n"},
		{"power fib", []string{"power", "1,1;1,0", "5"}, "[\n[8.00, 5.00],\n[5.00, 3.00]\n]\n"},
		{"power zero", []string{"power", "2,0;0,2", "0"}, "[\n[1.00, 0.00],\n[0.00, 1.00]\n]\n"},
		{"inverse", []string{"inverse", "1,2;3,4"}, "[\n[-2.00, 1.00],\n[1.50, -0.50]\n]\n"},
		{"mul", []string{"mul", "1,2;3,4", "5;6"}, "[\n[17.00],\n[39.00]\n]\n"},
		{"solve", []string{"solve", "2,0;0,4", "2,2"}, "[1.00, 0.50]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCommands_RandSeeded(t *testing.T) {
	a, err := run(t, "rand", "--seed", "7", "--lo", "-1", "--hi", "1", "3", "2")
	require.NoError(t, err)
	b, err := run(t, "rand", "--seed", "7", "--lo", "-1", "--hi", "1", "3", "2")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, 2, strings.Count(a, "],\n"))

	_, err = run(t, "rand", "--lo", "1", "--hi", "1", "2", "2")
	require.Error(t, err)
}

func TestCommands_Errors(t *testing.T) {
	_, err := run(t, "power", "1,1;1,0", "-1")
	require.ErrorIs(t, err, matrix.ErrInvalidExponent)

	// negative sizes reach the constructor, which rejects them
	_, err = run(t, "rand", "2", "-3")
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	_, err = run(t, "inverse", "1,2;2,4")
	require.ErrorIs(t, err, matrix.ErrSingularMatrix)

	_, err = run(t, "mul", "1,2", "1,2")
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = run(t, "power", "1,2;3", "2")
	require.ErrorIs(t, err, matrix.ErrRaggedShape)

	_, err = run(t, "identity")
	require.ErrorIs(t, err, errArgCount)

	_, err = run(t, "identity", "x")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	got, err := run(t, "--version")
	require.NoError(t, err)
	require.Contains(t, got, crunum.Version)
}
