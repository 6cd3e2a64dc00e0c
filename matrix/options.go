// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and random fill.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an
//     explicit source (WithSeed / WithRand) or a time-seeded fallback.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The fill value of NewMatrixFill / NewVectorFill is an explicit argument,
//     never an option, so the zero-filled constructors stay unambiguous.
//   - Numeric policy (eps, validateNaNInf) is captured per instance at
//     construction and inherited by every result derived from that instance.
package matrix

import (
	"math"
	"math/rand"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative/absolute tolerance used by Equal and
	// EqualScalar: |a-b| <= eps * max(1, |a|, |b|).
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the magnitude at or below which an elimination
	// pivot is treated as zero by Inverse.
	DefaultPivotTolerance = 1e-6

	// DefaultValidateNaNInf rejects NaN/±Inf at ingestion points (Set, Push,
	// FromRows, FromSlice, fill constructors).
	DefaultValidateNaNInf = true

	// DefaultRandLo and DefaultRandHi bound the uniform interval [lo, hi) used
	// by RandInit and RandVector.
	DefaultRandLo = 0.0
	DefaultRandHi = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicRandNil         = "matrix: WithRand(nil)"
	panicRangeInvalid    = "matrix: WithRange: need finite lo < hi"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf

	// random fill
	rng    *rand.Rand // nil ⇒ time-seeded source created on demand
	lo, hi float64    // uniform interval [lo, hi)
}

// WithEpsilon sets the tolerance used by tolerant equality.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the singularity threshold for Inverse.
// A candidate pivot p is usable only when |p| > tol.
// Panics when tol is negative, NaN or infinite.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf toggles the finite-only ingestion guard.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithRand provides an explicit RNG for RandInit / RandVector.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the uniform interval [lo, hi) for random fill.
// Panics unless lo and hi are finite and lo < hi.
func WithRange(lo, hi float64) Option {
	if isNonFinite(lo) || isNonFinite(hi) || lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.lo = lo
		o.hi = hi
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		lo:             DefaultRandLo,
		hi:             DefaultRandHi,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// policy extracts the per-instance numeric policy from resolved options.
func (o Options) policy() policy {
	return policy{eps: o.eps, validateNaNInf: o.validateNaNInf}
}

// source returns the configured RNG, or a time-seeded one.
func (o Options) source() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// policy is the numeric policy carried by every Vector and Matrix.
type policy struct {
	eps            float64 // equality tolerance
	validateNaNInf bool    // reject non-finite input
}

// admit reports whether v may be stored under this policy.
func (p policy) admit(v float64) bool {
	return !p.validateNaNInf || !isNonFinite(v)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
