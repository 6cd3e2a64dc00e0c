// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crunum/matrix"
)

// 1) TestDefaultOptions_Documented verifies that an empty option list resolves to documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Eps != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Eps, matrix.DefaultEpsilon)
	}
	if o.PivotTol != matrix.DefaultPivotTolerance {
		t.Fatalf("pivotTol default mismatch: got %v, want %v", o.PivotTol, matrix.DefaultPivotTolerance)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
	if o.HasRand {
		t.Fatalf("rng must be unset by default")
	}
	if o.Lo != matrix.DefaultRandLo || o.Hi != matrix.DefaultRandHi {
		t.Fatalf("range default mismatch: got [%v,%v), want [%v,%v)", o.Lo, o.Hi, matrix.DefaultRandLo, matrix.DefaultRandHi)
	}
}

// 2) TestGatherOptions_LastWriterWins ensures repeated setters resolve to the last value.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithEpsilon(1e-3),
		matrix.WithEpsilon(1e-6),
		matrix.WithValidateNaNInf(false),
		matrix.WithPivotTolerance(1e-12),
		matrix.WithRange(-1, 1),
		matrix.WithRange(2, 3),
		matrix.WithSeed(1),
	)
	if o.Eps != 1e-6 {
		t.Fatalf("eps: got %v, want 1e-6", o.Eps)
	}
	if o.ValidateNaNInf {
		t.Fatalf("validateNaNInf: got true, want false")
	}
	if o.PivotTol != 1e-12 {
		t.Fatalf("pivotTol: got %v, want 1e-12", o.PivotTol)
	}
	if o.Lo != 2 || o.Hi != 3 {
		t.Fatalf("range: got [%v,%v), want [2,3)", o.Lo, o.Hi)
	}
	if !o.HasRand {
		t.Fatalf("WithSeed must install an rng")
	}

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithRand(rand.New(rand.NewSource(3))))
	if !o.HasRand {
		t.Fatalf("WithRand must install an rng")
	}
}

// 3) TestOptions_PanicOnInvalid verifies programmer errors panic at option construction.
func TestOptions_PanicOnInvalid(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"eps negative", func() { matrix.WithEpsilon(-1) }},
		{"eps NaN", func() { matrix.WithEpsilon(math.NaN()) }},
		{"pivot negative", func() { matrix.WithPivotTolerance(-1e-9) }},
		{"pivot Inf", func() { matrix.WithPivotTolerance(math.Inf(1)) }},
		{"rand nil", func() { matrix.WithRand(nil) }},
		{"range inverted", func() { matrix.WithRange(1, 0) }},
		{"range empty", func() { matrix.WithRange(1, 1) }},
		{"range Inf", func() { matrix.WithRange(0, math.Inf(1)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

// 4) TestWithRand_SharedSource checks that draws consume the provided source.
func TestWithRand_SharedSource(t *testing.T) {
	a, err := matrix.RandVector(4, matrix.WithRand(rand.New(rand.NewSource(9))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := matrix.RandVector(4, matrix.WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("same seed must reproduce: %s vs %s", a, b)
	}
}
