// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Row capacity tracked separately from the row count so PushRow/PopRow
//     share Vector's amortized growth (see buffer.go, rows.go).
//
// Ownership:
//   - A Matrix exclusively owns its buffer; every arithmetic result is a fresh
//     allocation and accessors returning slices return copies.
//   - Not safe for concurrent mutation. Read-only use of an instance that no
//     goroutine mutates is safe.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); At/Set: O(1); Clone/Raw: O(r*c); Row: O(c); Col: O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Matrix is an exclusively owned rows×cols grid of float64, row-major.
//   - r,c hold dimensions (both >= 0).
//   - data holds rowCap*c slots; only data[:r*c] is meaningful.
//   - pol is the numeric policy captured at construction.
type Matrix struct {
	r, c   int       // row and column counts
	rowCap int       // allocated rows, rowCap >= r
	data   []float64 // contiguous row-major storage, len == rowCap*c
	pol    policy    // equality tolerance and NaN/Inf guard
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero-area shapes are legal.
//
// Errors:
//   - ErrInvalidSize when rows < 0, cols < 0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 || !areaFits(rows, cols) {
		return nil, opErrorf(opNew, ErrInvalidSize)
	}
	o := gatherOptions(opts...)

	return newMatrixLike(rows, cols, o.policy()), nil
}

// NewMatrixFill creates a rows×cols matrix with every element set to fill.
// Errors: ErrInvalidSize, ErrNaNInf (non-finite fill while the guard is on).
func NewMatrixFill(rows, cols int, fill float64, opts ...Option) (*Matrix, error) {
	m, err := NewMatrix(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if !m.pol.admit(fill) {
		return nil, opErrorf(opNew, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// FromRows builds a matrix from a rectangular literal, copying every value.
// MAIN DESCRIPTION:
//   - len(rows) becomes Rows(); the common inner length becomes Cols().
//
// Implementation:
//   - Stage 1: validate every inner slice has len(rows[0]).
//   - Stage 2: copy row by row into one flat buffer, checking the numeric policy.
//
// Errors:
//   - ErrRaggedShape when inner lengths differ.
//   - ErrNaNInf on a non-finite value while the guard is on.
//
// Notes:
//   - An empty outer slice yields a legal 0×0 matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	p := o.policy()
	r := len(rows)
	if r == 0 {
		return newMatrixLike(0, 0, p), nil
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opFromRows, i, len(rows[i]), c, ErrRaggedShape)
		}
	}

	m := newMatrixLike(r, c, p)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !p.admit(rows[i][j]) {
				return nil, indexErrorf("Matrix", opFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidSize when n < 0 or n*n overflows int.
func Identity(n int, opts ...Option) (*Matrix, error) {
	m, err := NewMatrix(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// RandInit returns a rows×cols matrix with entries drawn uniformly from the
// configured interval (default [0,1)).
//
// Notes:
//   - Without WithSeed/WithRand a time-seeded source is used, so values are
//     not reproducible. Intended for demonstrations and benchmarks.
func RandInit(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 || !areaFits(rows, cols) {
		return nil, opErrorf(opNew, ErrInvalidSize)
	}
	o := gatherOptions(opts...)
	rng := o.source()
	span := o.hi - o.lo
	m := newMatrixLike(rows, cols, o.policy())
	for i := range m.data {
		m.data[i] = o.lo + rng.Float64()*span
	}

	return m, nil
}

// newMatrixLike allocates a zero r×c matrix with policy p and a tight row capacity.
func newMatrixLike(r, c int, p policy) *Matrix {
	return &Matrix{r: r, c: c, rowCap: r, data: make([]float64, r*c), pol: p}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Capacity returns the number of rows the buffer holds before PushRow reallocates.
func (m *Matrix) Capacity() int { return m.rowCap }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrIndexOutOfBounds outside [0,Rows())×[0,Cols()).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, indexErrorf("Matrix", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrIndexOutOfBounds; ErrNaNInf when the guard is on. No write on error.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf("Matrix", ctxSet, row, col, err)
	}
	if !m.pol.admit(v) {
		return indexErrorf("Matrix", ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new tight buffer, same policy).
func (m *Matrix) Clone() *Matrix {
	out := newMatrixLike(m.r, m.c, m.pol)
	copy(out.data, m.data[:m.r*m.c])

	return out
}

// Raw returns a copy of the row-major element buffer (length Rows()*Cols()).
// External printers pair it with Rows()/Cols() to reproduce String().
func (m *Matrix) Raw() []float64 {
	out := make([]float64, m.r*m.c)
	copy(out, m.data[:m.r*m.c])

	return out
}

// ToRows returns the elements as a freshly allocated [][]float64.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Row copies row i into a new Vector of length Cols().
// Errors: ErrIndexOutOfBounds.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, indexErrorf("Matrix", opRow, i, 0, ErrIndexOutOfBounds)
	}

	return m.rowVector(i), nil
}

// Col copies column j into a new Vector of length Rows().
// Errors: ErrIndexOutOfBounds.
func (m *Matrix) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, indexErrorf("Matrix", opCol, 0, j, ErrIndexOutOfBounds)
	}

	return m.colVector(j), nil
}

// rowVector copies row i without bounds checks.
func (m *Matrix) rowVector(i int) *Vector {
	v := newVectorLike(m.c, m.pol)
	copy(v.data, m.data[i*m.c:(i+1)*m.c])

	return v
}

// colVector copies column j without bounds checks.
func (m *Matrix) colVector(j int) *Vector {
	v := newVectorLike(m.r, m.pol)
	for i := 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+j]
	}

	return v
}

// String renders the matrix as a nested bracket block:
//
//	[
//	[1.00, 2.00],
//	[3.00, 4.00]
//	]
//
// One row per line, rows separated by ",\n", two decimals per element.
// Not for hot paths; intended for logs and debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	buf := make([]byte, 0, 16*(m.c+1))
	b.WriteString(_fmtBlockOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		buf = appendRow(buf[:0], m.data[i*m.c:(i+1)*m.c])
		b.Write(buf)
	}
	b.WriteString(_fmtBlockClose)

	return b.String()
}

// values exposes the live window for package-internal kernels.
func (m *Matrix) values() []float64 { return m.data[:m.r*m.c] }
