// SPDX-License-Identifier: MIT

// Package matrix - Vector: owned, dynamically resizable sequence of float64.
//
// Purpose:
//   - Contiguous buffer with separate length/capacity tracking (arena style).
//   - Bounds-checked access: At/Set return errors instead of panicking.
//   - Push/Pop amortized O(1) via the doubling/halving rules in buffer.go.
//
// Ownership:
//   - A Vector exclusively owns its buffer. Constructors copy their input and
//     every accessor that returns a slice returns a copy.
//   - Not safe for concurrent mutation; callers serialize access externally.
//
// Complexity quicksheet:
//   - NewVector: O(n); At/Set/Len/Cap: O(1); Push/Pop: amortized O(1); Clone: O(n).

package matrix

import "fmt"

// Vector is an exclusively owned, growable sequence of real numbers.
//   - data holds capacity slots; only data[:n] is meaningful.
//   - pol is the numeric policy captured at construction.
type Vector struct {
	data []float64 // arena; len(data) == capacity
	n    int       // logical length, 0 <= n <= len(data)
	pol  policy    // equality tolerance and NaN/Inf guard
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// NewVector allocates a zero-filled Vector of length n.
// Errors: ErrInvalidSize when n < 0.
// Complexity: O(n).
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, opErrorf(opNew, ErrInvalidSize)
	}
	o := gatherOptions(opts...)

	return &Vector{data: make([]float64, n), n: n, pol: o.policy()}, nil
}

// NewVectorFill allocates a Vector of length n with every element set to fill.
// Errors: ErrInvalidSize (n < 0), ErrNaNInf (non-finite fill under the guard).
func NewVectorFill(n int, fill float64, opts ...Option) (*Vector, error) {
	v, err := NewVector(n, opts...)
	if err != nil {
		return nil, err
	}
	if !v.pol.admit(fill) {
		return nil, opErrorf(opNew, ErrNaNInf)
	}
	for i := range v.data {
		v.data[i] = fill
	}

	return v, nil
}

// VectorFromSlice builds a Vector of len(values) elements copied in order.
// The caller keeps ownership of values; later writes to it are not observed.
//
// Errors:
//   - ErrNaNInf when an element is non-finite and the guard is on.
//
// Complexity: O(n).
func VectorFromSlice(values []float64, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	p := o.policy()
	buf := make([]float64, len(values))
	for i, x := range values {
		if !p.admit(x) {
			return nil, indexErrorf("Vector", "FromSlice", i, 0, ErrNaNInf)
		}
		buf[i] = x
	}

	return &Vector{data: buf, n: len(values), pol: p}, nil
}

// RandVector returns n values drawn uniformly from the configured interval
// (default [0,1)). Use WithSeed for reproducible draws.
func RandVector(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, opErrorf(opNew, ErrInvalidSize)
	}
	o := gatherOptions(opts...)
	rng := o.source()
	span := o.hi - o.lo
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = o.lo + rng.Float64()*span
	}

	return &Vector{data: buf, n: n, pol: o.policy()}, nil
}

// Len returns the current number of elements.
func (v *Vector) Len() int { return v.n }

// Cap returns the number of allocated slots (Cap() >= Len()).
func (v *Vector) Cap() int { return len(v.data) }

// At returns element i.
// Errors: ErrIndexOutOfBounds when i is outside [0, Len()).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, indexErrorf("Vector", "At", i, 0, ErrIndexOutOfBounds)
	}

	return v.data[i], nil
}

// Set stores x at index i.
// Errors: ErrIndexOutOfBounds, ErrNaNInf (guard on). The vector is unchanged on error.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.n {
		return indexErrorf("Vector", "Set", i, 0, ErrIndexOutOfBounds)
	}
	if !v.pol.admit(x) {
		return indexErrorf("Vector", "Set", i, 0, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Push appends x, doubling capacity when the arena is full.
//
// Implementation:
//   - Stage 1: validate x against the numeric policy (no mutation on error).
//   - Stage 2: if n == cap, reallocate to growSlots(cap, n+1) and copy.
//   - Stage 3: write x at n and bump n.
//
// Complexity:
//   - Amortized O(1); a single resize is O(n).
func (v *Vector) Push(x float64) error {
	if !v.pol.admit(x) {
		return opErrorf(opPush, ErrNaNInf)
	}
	if v.n == len(v.data) {
		v.data = resize(v.data, v.n, growSlots(len(v.data), v.n+1))
	}
	v.data[v.n] = x
	v.n++

	return nil
}

// Pop removes and returns the last element.
// Capacity is halved once the length drops to a quarter of it.
// Errors: ErrEmptyCollection when Len() == 0.
func (v *Vector) Pop() (float64, error) {
	if v.n == 0 {
		return 0, opErrorf(opPop, ErrEmptyCollection)
	}
	v.n--
	x := v.data[v.n]
	if c := shrinkSlots(len(v.data), v.n); c != len(v.data) {
		v.data = resize(v.data, v.n, c)
	}

	return x, nil
}

// Clone returns a deep copy with the same length and policy.
// Capacity of the copy is trimmed to Len().
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Slice(), n: v.n, pol: v.pol}
}

// Slice returns a copy of the live elements.
func (v *Vector) Slice() []float64 {
	out := make([]float64, v.n)
	copy(out, v.data[:v.n])

	return out
}

// String renders the vector as "[a, b, ...]" with two decimals per element.
func (v *Vector) String() string {
	return string(appendRow(nil, v.data[:v.n]))
}

// values exposes the live window for package-internal kernels.
func (v *Vector) values() []float64 { return v.data[:v.n] }

// newVectorLike allocates a zero Vector of length n sharing p's policy.
func newVectorLike(n int, p policy) *Vector {
	return &Vector{data: make([]float64, n), n: n, pol: p}
}
